package model

import (
	"GameAdmin/internal/building/domain"
	"time"
)

// Configuration 是 MySQL 表 building_configuration 的行。
type Configuration struct {
	Id               int64     `gorm:"column:id;primaryKey;autoIncrement:false;comment:雪花ID"`
	BuildingType     string    `gorm:"column:building_type;type:varchar(32);uniqueIndex;not null;comment:建筑类型"`
	BuildingCost     int64     `gorm:"column:building_cost;not null;comment:造价"`
	ConstructionTime int       `gorm:"column:construction_time;not null;comment:建造时间(秒)"`
	CreatedBy        int       `gorm:"column:created_by;comment:创建人uid"`
	Ctime            time.Time `gorm:"column:ctime;comment:创建时间"`
	Mtime            time.Time `gorm:"column:mtime;comment:更新时间"`
}

func (Configuration) TableName() string {
	return "building_configuration"
}

// ConfigurationDoc 是 MongoDB 集合 building_configuration 的文档。
type ConfigurationDoc struct {
	Id               int64     `bson:"_id"`
	BuildingType     string    `bson:"building_type"`
	BuildingCost     int64     `bson:"building_cost"`
	ConstructionTime int       `bson:"construction_time"`
	CreatedBy        int       `bson:"created_by"`
	Ctime            time.Time `bson:"ctime"`
	Mtime            time.Time `bson:"mtime"`
}

func ToRow(c domain.Configuration) Configuration {
	return Configuration{
		Id:               c.ID,
		BuildingType:     string(c.BuildingType),
		BuildingCost:     c.BuildingCost,
		ConstructionTime: c.ConstructionTime,
		CreatedBy:        c.CreatedBy,
		Ctime:            c.Ctime,
		Mtime:            c.Mtime,
	}
}

func (m Configuration) ToDomain() domain.Configuration {
	return domain.Configuration{
		ID:               m.Id,
		BuildingType:     domain.BuildingType(m.BuildingType),
		BuildingCost:     m.BuildingCost,
		ConstructionTime: m.ConstructionTime,
		CreatedBy:        m.CreatedBy,
		Ctime:            m.Ctime,
		Mtime:            m.Mtime,
	}
}

func ToDoc(c domain.Configuration) ConfigurationDoc {
	return ConfigurationDoc(ToRow(c))
}

func (d ConfigurationDoc) ToDomain() domain.Configuration {
	return Configuration(d).ToDomain()
}
