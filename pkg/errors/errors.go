// Package errors はエンジン全体のエラーハンドリングを提供します。
// 損失ハンドルの生成・適用の境界で返されるエラーは、ここで定義される
// 閉じたセンチネル集合のいずれかに errors.Is で対応付けられます。
// 呼び出し側はエラー文字列ではなくセンチネルで分岐してください。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	ABIエラーコード（センチネル）
//
// ===========================================================================

var (
	// ErrUnknownLoss は損失指定文字列の名前が登録されていない場合のエラーです。
	ErrUnknownLoss = New("unknown loss")

	// ErrLossParams は損失指定文字列のパラメータが不正な場合のエラーです。
	ErrLossParams = New("invalid loss parameters")

	// ErrConfigMismatch は損失と出力数などの設定が矛盾する場合のエラーです。
	ErrConfigMismatch = New("loss configuration mismatch")

	// ErrAllocFailed はサイズ計算のオーバーフローを含む確保失敗のエラーです。
	ErrAllocFailed = New("allocation failed")

	// ErrUnsupportedBackend は要求された計算ゾーンが未登録の場合のエラーです。
	ErrUnsupportedBackend = New("unsupported compute backend")

	// ErrBatchShape は更新バッチのフィールド長が矛盾する場合のエラーです。
	ErrBatchShape = New("batch shape mismatch")

	// ErrHandleNotReady は未初期化または解放済みハンドルの使用エラーです。
	ErrHandleNotReady = New("loss handle not ready")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// UnknownLossError は損失指定文字列の名前部分が解決できない場合のエラーです。
type UnknownLossError struct {
	Spec string
}

func (e *UnknownLossError) Error() string {
	return fmt.Sprintf("goebm: unknown loss specification %q", e.Spec)
}

// Unwrap はABIセンチネルを返します。
func (e *UnknownLossError) Unwrap() error {
	return ErrUnknownLoss
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnknownLossError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("spec", e.Spec).
		Str("type", "UnknownLossError")
}

// NewUnknownLossError は新しいUnknownLossErrorを作成し、スタックトレースを付与します。
func NewUnknownLossError(spec string) error {
	err := &UnknownLossError{Spec: spec}
	return errors.WithStack(err)
}

// LossParamError は損失指定文字列のパラメータ部分が不正な場合のエラーです。
// 構文エラー、未知のキー、範囲外の値などを表します。
type LossParamError struct {
	Loss   string
	Param  string
	Reason string
	Value  interface{}
}

func (e *LossParamError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("goebm: invalid parameter %q for loss %q: %s (got: %v)", e.Param, e.Loss, e.Reason, e.Value)
	}
	return fmt.Sprintf("goebm: invalid parameter %q for loss %q: %s", e.Param, e.Loss, e.Reason)
}

// Unwrap はABIセンチネルを返します。
func (e *LossParamError) Unwrap() error {
	return ErrLossParams
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *LossParamError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("loss", e.Loss).
		Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "LossParamError")
}

// NewLossParamError は新しいLossParamErrorを作成し、スタックトレースを付与します。
func NewLossParamError(loss, param, reason string, value interface{}) error {
	err := &LossParamError{Loss: loss, Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ConfigMismatchError は損失が要求された設定で動作できない場合のエラーです。
// 例えば出力数1のみ対応の損失に複数出力を要求した場合など。
type ConfigMismatchError struct {
	Loss    string
	Outputs int
	Reason  string
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("goebm: loss %q cannot serve %d outputs: %s", e.Loss, e.Outputs, e.Reason)
}

// Unwrap はABIセンチネルを返します。
func (e *ConfigMismatchError) Unwrap() error {
	return ErrConfigMismatch
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConfigMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("loss", e.Loss).
		Int("outputs", e.Outputs).
		Str("reason", e.Reason).
		Str("type", "ConfigMismatchError")
}

// NewConfigMismatchError は新しいConfigMismatchErrorを作成し、スタックトレースを付与します。
func NewConfigMismatchError(loss string, outputs int, reason string) error {
	err := &ConfigMismatchError{Loss: loss, Outputs: outputs, Reason: reason}
	return errors.WithStack(err)
}

// ShapeError は更新バッチのフィールド長が宣言と一致しない場合のエラーです。
type ShapeError struct {
	Op       string
	Field    string
	Expected int
	Got      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("goebm: %s: field %q length mismatch. Expected %d, got %d", e.Op, e.Field, e.Expected, e.Got)
}

// Unwrap はABIセンチネルを返します。
func (e *ShapeError) Unwrap() error {
	return ErrBatchShape
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("field", e.Field).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ShapeError")
}

// NewShapeError は新しいShapeErrorを作成し、スタックトレースを付与します。
func NewShapeError(op, field string, expected, got int) error {
	err := &ShapeError{Op: op, Field: field, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// AllocError はサイズ計算がオーバーフローするか、確保量がアドレス空間を
// 超える場合のエラーです。実際の確保は行われません。
type AllocError struct {
	Count    uint64
	ElemSize uint64
	Reason   string
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("goebm: cannot allocate %d elements of %d bytes: %s", e.Count, e.ElemSize, e.Reason)
}

// Unwrap はABIセンチネルを返します。
func (e *AllocError) Unwrap() error {
	return ErrAllocFailed
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *AllocError) MarshalZerologObject(event *zerolog.Event) {
	event.Uint64("count", e.Count).
		Uint64("elem_size", e.ElemSize).
		Str("reason", e.Reason).
		Str("type", "AllocError")
}

// NewAllocError は新しいAllocErrorを作成し、スタックトレースを付与します。
func NewAllocError(count, elemSize uint64, reason string) error {
	err := &AllocError{Count: count, ElemSize: elemSize, Reason: reason}
	return errors.WithStack(err)
}

// UnsupportedBackendError は要求された計算ゾーンのファクトリが
// 登録されていない場合のエラーです。
type UnsupportedBackendError struct {
	Zone string
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("goebm: no compute zone registered for %q", e.Zone)
}

// Unwrap はABIセンチネルを返します。
func (e *UnsupportedBackendError) Unwrap() error {
	return ErrUnsupportedBackend
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnsupportedBackendError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("zone", e.Zone).
		Str("type", "UnsupportedBackendError")
}

// NewUnsupportedBackendError は新しいUnsupportedBackendErrorを作成し、
// スタックトレースを付与します。
func NewUnsupportedBackendError(zone string) error {
	err := &UnsupportedBackendError{Zone: zone}
	return errors.WithStack(err)
}

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、オーバーフロー、アンダーフローなどを検出します。
type NumericalInstabilityError struct {
	Operation string                 // 発生した操作（例: "apply_update", "metric_finish"）
	Values    []float64              // 問題のある値
	Context   map[string]interface{} // デバッグ用の追加コンテキスト情報
	Iteration int                    // 発生したブースティングラウンド番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("goebm: numerical instability detected in %s at round %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
		Context:   make(map[string]interface{}),
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
