package sqlite

import (
	"database/sql"

	"bnapp/internal/model"
	"bnapp/pkg/sqlitedb"
)

const itemColumns = `id, date_key, type, owner, title, description, start_time, end_time,
	duration, address, reminder_minutes, recurring, urgency, mirror_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (model.Item, error) {
	var (
		item     model.Item
		duration sql.NullInt64
		reminder sql.NullInt64
	)
	err := s.Scan(
		&item.ID, &item.DateKey, &item.Type, &item.Owner, &item.Title, &item.Description,
		&item.StartTime, &item.EndTime, &duration, &item.Address, &reminder,
		&item.Recurring, &item.Urgency, &item.MirrorID,
	)
	if err != nil {
		return model.Item{}, err
	}
	item.Duration = sqlitedb.IntPtr(duration)
	item.ReminderMinutes = sqlitedb.IntPtr(reminder)
	return item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
