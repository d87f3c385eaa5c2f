package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionViewResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		ID            uint    `json:"id"`
		Title         string  `json:"title"`
		Amount        float64 `json:"amount"`
		Kind          string  `json:"kind"`
		Currency      string  `json:"currency"`
		DisplayAmount float64 `json:"display_amount"`
	} `json:"data"`
}

func TestTransactionHandler_Create(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	w := doJSON(t, router, "POST", "/transactions",
		`{"month":0,"year":2025,"title":"买菜","amount":99.99,"kind":"expense"}`)
	assert.Equal(t, 200, w.Code)

	var resp transactionViewResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp.Message)
	assert.Equal(t, "买菜", resp.Data.Title)
	assert.Equal(t, 99.99, resp.Data.Amount)
	assert.Equal(t, "expense", resp.Data.Kind)
	assert.NotZero(t, resp.Data.ID)
}

func TestTransactionHandler_Create_Invalid(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	cases := []string{
		`{"month":0,"year":2025,"title":"","amount":10,"kind":"expense"}`,
		`{"month":0,"year":2025,"title":"ok","amount":10,"kind":"transfer"}`,
		`{"month":0,"year":2025,"title":"ok","amount":-5,"kind":"expense"}`,
		`{"month":0,"year":2025,"title":"ok","amount":1.999,"kind":"income"}`,
		`{"month":12,"year":2025,"title":"ok","amount":10,"kind":"expense"}`,
		`{"month":0,"year":2025,"title":"ok","amount":10,"kind":"expense","currency":"BTC"}`,
	}
	for _, body := range cases {
		w := doJSON(t, router, "POST", "/transactions", body)
		assert.Equal(t, 400, w.Code, "body=%s", body)
	}

	// 拒绝的输入不产生任何写入
	w := doJSON(t, router, "GET", "/transactions?month=0&year=2025", "")
	assert.Equal(t, 200, w.Code)
	var listResp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)
}

func TestTransactionHandler_CreateWithCurrency(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	// 以 INR 录入 83，落库为 1 USD
	w := doJSON(t, router, "POST", "/transactions",
		`{"month":0,"year":2025,"title":"चाय","amount":83,"kind":"expense","currency":"INR"}`)
	assert.Equal(t, 200, w.Code)

	var resp transactionViewResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1.0, resp.Data.Amount)
	assert.Equal(t, "INR", resp.Data.Currency)
	assert.Equal(t, 83.0, resp.Data.DisplayAmount)
}

func TestTransactionHandler_List(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	for i, title := range []string{"早餐", "午餐", "晚餐"} {
		w := doJSON(t, router, "POST", "/transactions",
			fmt.Sprintf(`{"month":5,"year":2025,"title":"%s","amount":%d,"kind":"expense"}`, title, (i+1)*10))
		require.Equal(t, 200, w.Code)
	}

	w := doJSON(t, router, "GET", "/transactions?month=5&year=2025", "")
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	// 最新在前
	assert.Equal(t, "晚餐", resp.Data[0].Title)
	assert.Equal(t, "早餐", resp.Data[2].Title)

	// 其他月份为空
	w = doJSON(t, router, "GET", "/transactions?month=6&year=2025", "")
	assert.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestTransactionHandler_Update(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	w := doJSON(t, router, "POST", "/transactions",
		`{"month":0,"year":2025,"title":"打车","amount":30,"kind":"expense"}`)
	require.Equal(t, 200, w.Code)
	var created transactionViewResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "PUT", fmt.Sprintf("/transactions/%d", created.Data.ID),
		`{"title":"地铁","amount":5}`)
	assert.Equal(t, 200, w.Code)
	var updated transactionViewResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "地铁", updated.Data.Title)
	assert.Equal(t, 5.0, updated.Data.Amount)
	// 类型不随更新改变
	assert.Equal(t, "expense", updated.Data.Kind)

	// 不存在的 id
	w = doJSON(t, router, "PUT", "/transactions/9999", `{"title":"地铁","amount":5}`)
	assert.Equal(t, 404, w.Code)

	// 非法 id
	w = doJSON(t, router, "PUT", "/transactions/abc", `{"title":"地铁","amount":5}`)
	assert.Equal(t, 400, w.Code)
}

func TestTransactionHandler_Delete(t *testing.T) {
	setupLocalLedger(t)
	router := newLedgerRouter(1)

	w := doJSON(t, router, "POST", "/transactions",
		`{"month":0,"year":2025,"title":"电影","amount":45,"kind":"expense"}`)
	require.Equal(t, 200, w.Code)
	var created transactionViewResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/transactions/%d", created.Data.ID), "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "删除成功")

	// 重复删除返回 404
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/transactions/%d", created.Data.ID), "")
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "记录不存在")
}
