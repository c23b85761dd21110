package model

// NoSubgroup — сентинел "без розподілу на підгрупи": заняття стосується всіх.
const NoSubgroup = -1

// UserGroup представляет привязку пользователя к учебной группе,
// как её возвращает schedule API.
type UserGroup struct {
	GroupName string `json:"groupName"`
	Subgroup  int    `json:"subgroup"`
	SourceID  int64  `json:"sourceId"`
}

// RealSubgroups возвращает список подгрупп без сентинела NoSubgroup.
func RealSubgroups(subgroups []int) []int {
	real := make([]int, 0, len(subgroups))
	for _, sg := range subgroups {
		if sg != NoSubgroup {
			real = append(real, sg)
		}
	}
	return real
}
