package domain

// BuildingType 区分大小写，声明顺序即展示顺序。
type BuildingType string

const (
	Farm         BuildingType = "Farm"
	Academy      BuildingType = "Academy"
	Headquarters BuildingType = "Headquarters"
	LumberMill   BuildingType = "LumberMill"
	Barracks     BuildingType = "Barracks"
)

var allTypes = []BuildingType{Farm, Academy, Headquarters, LumberMill, Barracks}

// AllTypes 返回副本，调用方可随意修改。
func AllTypes() []BuildingType {
	out := make([]BuildingType, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t BuildingType) Valid() bool {
	return t.order() >= 0
}

func (t BuildingType) String() string {
	return string(t)
}

func (t BuildingType) order() int {
	for i, v := range allTypes {
		if v == t {
			return i
		}
	}
	return -1
}
