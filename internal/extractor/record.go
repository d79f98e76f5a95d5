package extractor

import "strings"

// CVRecord 一份简历的抽取结果。可选字段未解析到时为 null，
// region 永远有值（兜底地区哨兵），education_level 默认为 5。
type CVRecord struct {
	FullName            *string `json:"full_name"`
	DateOfBirth         *string `json:"date_of_birth"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email"`
	Region              int     `json:"region"`
	YearsExperience     *int    `json:"years_experience"`
	EducationLevel      int     `json:"education_level"`
	LanguageProficiency []int   `json:"language_proficiency"`
	Skills              []int   `json:"skills"`
	Introduction        *string `json:"introduction"`
	SourceFile          string  `json:"source_file,omitempty"`
}

// stringPtr 返回裁剪后字符串的指针，空串归一化为 nil
func stringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// intPtr 返回整数的指针
func intPtr(i int) *int {
	return &i
}
