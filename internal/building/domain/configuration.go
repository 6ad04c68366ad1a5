package domain

import (
	"slices"
	"time"
)

const (
	MinConstructionTime = 30
	MaxConstructionTime = 1800
)

const (
	MsgCostNotPositive = "Building cost must be a positive number."
	MsgTimeOutOfRange  = "Construction time must be between 30 and 1800 seconds."
	MsgTypeInvalid     = "Selected building type is not valid."
)

type Configuration struct {
	ID               int64        `json:"id,string"`
	BuildingType     BuildingType `json:"buildingType"`
	BuildingCost     int64        `json:"buildingCost"`
	ConstructionTime int          `json:"constructionTime"`
	CreatedBy        int          `json:"createdBy"`
	Ctime            time.Time    `json:"ctime"`
	Mtime            time.Time    `json:"mtime"`
}

// Validate 依次检查造价、建造时间、类型，返回第一条不满足的规则。
func Validate(t BuildingType, cost int64, seconds int) error {
	switch {
	case cost <= 0:
		return ErrInvalid.WithMsg(MsgCostNotPositive).WithData("buildingCost", cost)
	case seconds < MinConstructionTime || seconds > MaxConstructionTime:
		return ErrInvalid.WithMsg(MsgTimeOutOfRange).WithData("constructionTime", seconds)
	case !t.Valid():
		return ErrInvalid.WithMsg(MsgTypeInvalid).WithData("buildingType", string(t))
	}
	return nil
}

func (c Configuration) Validate() error {
	return Validate(c.BuildingType, c.BuildingCost, c.ConstructionTime)
}

// SortByDisplayOrder 原地按类型展示顺序排序。
func SortByDisplayOrder(cs []Configuration) {
	slices.SortStableFunc(cs, func(a, b Configuration) int {
		return a.BuildingType.order() - b.BuildingType.order()
	})
}

// AvailableTypes 返回尚未配置的类型（保持展示顺序）。
func AvailableTypes(configured []Configuration) []BuildingType {
	used := make(map[BuildingType]struct{}, len(configured))
	for _, c := range configured {
		used[c.BuildingType] = struct{}{}
	}
	out := make([]BuildingType, 0, len(allTypes))
	for _, t := range allTypes {
		if _, ok := used[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
