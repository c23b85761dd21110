package model

// Level представляет уровень выборочных дисциплин (бакалавриат, магистратура и т.д.).
type Level struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}
