package domain

// Status はTaskの進捗状態を表す。
// 値は既存データファイルとの互換のため元のラベルで永続化する。
type Status string

const (
	StatusPending    Status = "待开始"
	StatusInProgress Status = "进行中"
	StatusCompleted  Status = "已完成"
	StatusDelayed    Status = "已延期" // 自動では設定されない予約値
)

// FilterAll はフィルタを適用しないことを示すセンチネル値。
const (
	FilterAll      = "所有"
	FilterAllAlias = "ALL"
)

// IsFilterAll はvalueがフィルタ無効のセンチネルかを返す。
func IsFilterAll(value string) bool {
	return value == FilterAll || value == FilterAllAlias
}

// Name は英語の列挙名を返す。
func (s Status) Name() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusCompleted:
		return "COMPLETED"
	case StatusDelayed:
		return "DELAYED"
	default:
		return "UNKNOWN"
	}
}

// IsValid は定義済みのStatusかを返す。
func (s Status) IsValid() bool {
	return s.Name() != "UNKNOWN"
}

// ValidStatuses は有効なStatusの一覧を返す。
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusDelayed}
}

// ParseStatus は永続化ラベルまたは英語の列挙名からStatusを解析する。
func ParseStatus(s string) (Status, error) {
	for _, st := range ValidStatuses() {
		if s == string(st) || s == st.Name() {
			return st, nil
		}
	}
	return StatusPending, ErrInvalidStatus
}

// StatusForProgress は進捗率から導出されるStatusを返す。
func StatusForProgress(progress int) Status {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}
