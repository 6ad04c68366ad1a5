package model

import "GameAdmin/internal/building/domain"

type AddReq struct {
	BuildingType     string `json:"buildingType" form:"buildingType" yaml:"buildingType"`
	BuildingCost     int64  `json:"buildingCost" form:"buildingCost" yaml:"buildingCost"`
	ConstructionTime int    `json:"constructionTime" form:"constructionTime" yaml:"constructionTime"`
}

// Record 是导入/导出文件里的一条记录。
type Record = AddReq

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type TypesResp struct {
	All       []domain.BuildingType `json:"all"`
	Available []domain.BuildingType `json:"available"`
}
