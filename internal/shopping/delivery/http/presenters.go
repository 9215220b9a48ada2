package http

import (
	"time"

	"bnapp/internal/shopping"
)

type addReq struct {
	Text string `json:"text" binding:"required,max=200"`
}

func (r addReq) toInput(list string) shopping.AddInput {
	return shopping.AddInput{List: list, Text: r.Text}
}

type itemResp struct {
	ID        string     `json:"id"`
	List      string     `json:"list"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func newItemResp(it shopping.Item) itemResp {
	resp := itemResp{ID: it.ID, List: it.List, Text: it.Text, Completed: it.Completed}
	if !it.CreatedAt.IsZero() {
		created := it.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

type listResp struct {
	List  string     `json:"list"`
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(list string, items []shopping.Item) listResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	if list == "" {
		list = shopping.DefaultList
	}
	return listResp{List: list, Items: out}
}
