package state

import "github.com/kaidigital/schedulekai_bot/internal/model"

// WizardKind — вид активного диалога чата.
// В одном чате одновременно может идти только один диалог.
type WizardKind string

const (
	WizardNone        WizardKind = "" // Нет активного диалога
	WizardElectiveAdd WizardKind = "elective_add"
	WizardChangeGroup WizardKind = "change_group"
)

// Step — текущий шаг диалога.
type Step string

const (
	StepNone Step = ""

	// Шаги добавления выборочной дисциплины
	StepElectiveLevel    Step = "elective_level"
	StepElectiveName     Step = "elective_name"
	StepElectiveLesson   Step = "elective_lesson"
	StepElectiveType     Step = "elective_type"
	StepElectiveSubgroup Step = "elective_subgroup"

	// Шаги смены группы
	StepGroupName     Step = "group_name"
	StepGroupSubgroup Step = "group_subgroup"
)

// WizardState — слоты одного диалога чата. Содержимое осмысленно только
// вместе с текущим шагом; частично заполненное состояние после
// перезапуска процесса безопасно отбрасывается.
type WizardState struct {
	Kind WizardKind
	Step Step

	// Слоты добавления выборочной дисциплины
	SourceID   int64                    // SourceId группы пользователя
	LevelID    *int64                   // выбранный уровень, nil — без фильтра
	Lessons    []model.LessonDescriptor // результаты поиска, адресуются индексом в callback
	LessonIdx  int                      // индекс выбранной дисциплины в Lessons
	Types      []string                 // доступные виды занятий выбранной дисциплины
	LessonType string                   // выбранный вид занятий

	// Слоты смены группы
	GroupName string // нормализованное название группы-кандидата
}

// Lesson возвращает выбранную дисциплину, если слот ещё актуален.
func (s WizardState) Lesson() (model.LessonDescriptor, bool) {
	if s.LessonIdx < 0 || s.LessonIdx >= len(s.Lessons) {
		return model.LessonDescriptor{}, false
	}
	return s.Lessons[s.LessonIdx], true
}
