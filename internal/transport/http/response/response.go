package response

import "reflect"

// Resp 统一信封：data 永远是 0 或 1 个元素的列表，从不直接放 payload。
// 假值 payload（nil / 空切片 / 空 map / 空串 / 零值数字 / false）收敛为 []，
// 保持与既有客户端的线上兼容。
type Resp struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    []any  `json:"data"`
}

func New(status bool, message string, payload any) Resp {
	if isEmpty(payload) {
		return Resp{Status: status, Message: message, Data: []any{}}
	}
	return Resp{Status: status, Message: message, Data: []any{payload}}
}

// OK 成功响应
func OK(message string, payload any) Resp { return New(true, message, payload) }

// Fail 失败响应（data 固定为 []）
func Fail(message string) Resp { return New(false, message, nil) }

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}
