// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Store unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/events/items": {"post": {"tags": ["Events"], "summary": "Create an item", "responses": {"201": {"description": "Created"}}}},
        "/api/v1/events/items/{dateKey}/{id}": {
            "get": {"tags": ["Events"], "summary": "Item detail", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["Events"], "summary": "Update an item", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Events"], "summary": "Delete an item", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events/days/{date}": {"get": {"tags": ["Events"], "summary": "Items of a day", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/days/{date}/load": {"get": {"tags": ["Events"], "summary": "Daily load and free slots", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/days/{date}/blocks": {"get": {"tags": ["Events"], "summary": "Automatic daily blocks", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/days/{date}/holiday": {"post": {"tags": ["Events"], "summary": "Toggle the holiday flag", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/range": {"get": {"tags": ["Events"], "summary": "Items of a date range", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/tasks": {"get": {"tags": ["Events"], "summary": "Task list", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/history": {"get": {"tags": ["Events"], "summary": "Load history", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/suggest": {"get": {"tags": ["Events"], "summary": "Most urgent task", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/export": {"get": {"tags": ["Events"], "summary": "Export iCalendar", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/import": {"post": {"tags": ["Events"], "summary": "Import iCalendar", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/shopping/{list}": {
            "get": {"tags": ["Shopping"], "summary": "List items", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Shopping"], "summary": "Add an item", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/shopping/{list}/{id}/toggle": {"post": {"tags": ["Shopping"], "summary": "Toggle completed", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/shopping/{list}/{id}": {"delete": {"tags": ["Shopping"], "summary": "Delete an item", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/settings": {"get": {"tags": ["Settings"], "summary": "Current settings", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/settings/city": {"put": {"tags": ["Settings"], "summary": "Save the city", "responses": {"200": {"description": "OK"}, "502": {"description": "Geocoding failed"}}}},
        "/api/v1/weather/{date}": {"get": {"tags": ["Weather"], "summary": "Midday forecast", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/calendar/{year}/{month}": {"get": {"tags": ["Calendar"], "summary": "Month grid", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/gihari/command": {"post": {"tags": ["Gihari"], "summary": "Run a free text command", "responses": {"200": {"description": "OK"}, "429": {"description": "Rate limited"}}}},
        "/api/v1/gihari/summary": {"get": {"tags": ["Gihari"], "summary": "Today's summary", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/gihari/suggest": {"get": {"tags": ["Gihari"], "summary": "Suggest a task", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/gihari/free-time": {"get": {"tags": ["Gihari"], "summary": "Today's free time", "responses": {"200": {"description": "OK"}}}},
        "/webhook/telegram": {"post": {"tags": ["Telegram"], "summary": "Telegram bot webhook", "responses": {"200": {"description": "Accepted"}, "401": {"description": "Bad secret"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "BNAPP API",
	Description:      "Shared family calendar: daily load, free time, tasks, shopping, weather, Hebrew calendar and the Gihari assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
