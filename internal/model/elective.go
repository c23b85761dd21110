package model

// LessonDescriptor — запись каталога выборочных дисциплин,
// возвращаемая поиском по частичному названию.
type LessonDescriptor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	SourceID       int64    `json:"sourceId"`
	AvailableTypes []string `json:"availableTypes"`
	Subgroups      []int    `json:"subgroups"`
}

// SelectedElective — одна выбранная пользователем дисциплина.
//
// Поле ID контекстно перегружено самим API: при чтении (GET) это LessonId,
// при записи (POST) — SourceId. Асимметрия воспроизводится намеренно.
// LessonType необязателен: при отсутствии вида поле не сериализуется вовсе.
type SelectedElective struct {
	ID             int64  `json:"id"`
	LessonName     string `json:"lessonName"`
	LessonType     string `json:"lessonType,omitempty"`
	SubgroupNumber int    `json:"subgroupNumber"`
}
