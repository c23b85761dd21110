package model

// OutOfRange — тело ответа HTTP 400, когда запрошенная дата
// находится вне покрытого расписанием диапазона.
type OutOfRange struct {
	StartDate string `json:"startDate"` // ISO 8601
	EndDate   string `json:"endDate"`   // ISO 8601
}
