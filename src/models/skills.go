package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func decodeStringList(raw datatypes.JSON) []string {
	var list []string
	if len(raw) == 0 {
		return list
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func (p Project) SkillList() []string {
	return decodeStringList(p.RequiredSkills)
}

func (f FreelancerProfile) SkillList() []string {
	return decodeStringList(f.Skills)
}
