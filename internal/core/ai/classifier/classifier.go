// Package classifier 封裝外部文字分類服務的邊界。
// 核心管線只依賴 Classifier 介面；任何失敗（逾時、非 200、格式不符）
// 都以 *Error 回報，由擷取服務決定是否退回本地規則，永遠不會傳遞給呼叫方。
package classifier

import (
	"context"
	"fmt"

	"shoplist-generator/internal/pkg/common"
)

// FailureReason 分類失敗的種類
type FailureReason string

const (
	// ReasonUnavailable 服務無法使用（網路錯誤、逾時、非 200 狀態）
	ReasonUnavailable FailureReason = "unavailable"
	// ReasonMalformed 回應缺少必要欄位或無法解析
	ReasonMalformed FailureReason = "malformed"
	// ReasonDisabled 設定停用了分類服務
	ReasonDisabled FailureReason = "disabled"
)

// Error 分類服務的失敗，只在擷取服務內部流轉
type Error struct {
	Reason FailureReason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classifier %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("classifier %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError 創建分類失敗
func NewError(reason FailureReason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// Classifier 定義文字分類能力
type Classifier interface {
	// Classify 對單一來源文字做一次分類嘗試，不做自動重試
	Classify(ctx context.Context, text string) (*common.RecipeAnalysis, error)
}
