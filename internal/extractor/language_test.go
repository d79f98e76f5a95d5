package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bilingualProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := ProfileByName("bilingual")
	require.NoError(t, err)
	return p
}

// TestLanguageLastLineWins 后面的行覆盖前面行对同一语言的结论：
// 第一行 IELTS 8.0（高级），第二行 TOEIC 500（基础），最终为基础
func TestLanguageLastLineWins(t *testing.T) {
	p := bilingualProfile(t)

	text := "English: IELTS 8.0\nEnglish: TOEIC 500"
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages(text, p))
}

// TestLanguageScoreThresholds IELTS 7.0 和 TOEIC 650 是高级线
func TestLanguageScoreThresholds(t *testing.T) {
	p := bilingualProfile(t)

	assert.Equal(t, []int{LanguageEnglish}, ClassifyLanguages("Tiếng Anh IELTS 7.0", p))
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages("Tiếng Anh IELTS 6.5", p))
	assert.Equal(t, []int{LanguageEnglish}, ClassifyLanguages("English TOEIC 650", p))
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages("English TOEIC 600", p))
}

// TestLanguageRuleOrder 单行内规则顺序固定，IELTS先于TOEIC先于CEFR
func TestLanguageRuleOrder(t *testing.T) {
	p := bilingualProfile(t)

	// 同一行同时有 IELTS 低分和 C1，IELTS 分支先命中
	text := "English IELTS 5.0, level C1"
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages(text, p))

	// CEFR 等级
	assert.Equal(t, []int{LanguageEnglish}, ClassifyLanguages("English level C2", p))
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages("English level B2", p))
}

// TestLanguageKeywords 关键词兜底："giao tiếp" 属于流利档，"cơ bản" 属于基础档
func TestLanguageKeywords(t *testing.T) {
	p := bilingualProfile(t)

	assert.Equal(t, []int{LanguageEnglish}, ClassifyLanguages("Tiếng Anh giao tiếp tốt", p))
	assert.Equal(t, []int{LanguageBasicEnglish}, ClassifyLanguages("Tiếng Anh cơ bản", p))
}

// TestLanguageJapanese 日语按JLPT等级和关键词判定
func TestLanguageJapanese(t *testing.T) {
	p := bilingualProfile(t)

	assert.Equal(t, []int{LanguageJapanese}, ClassifyLanguages("Tiếng Nhật N2", p))
	assert.Equal(t, []int{LanguageBasicJapanese}, ClassifyLanguages("Japanese N4", p))
}

// TestLanguageListContract 同时检出两门语言时两个ID都保留（列表契约）
func TestLanguageListContract(t *testing.T) {
	p := bilingualProfile(t)

	text := "Tiếng Anh IELTS 7.5\nTiếng Nhật N3"
	assert.Equal(t, []int{LanguageEnglish, LanguageBasicJapanese}, ClassifyLanguages(text, p))
}

// TestLanguageNone 两门语言都未检出时返回无外语哨兵
func TestLanguageNone(t *testing.T) {
	p := bilingualProfile(t)

	assert.Equal(t, []int{LanguageNone}, ClassifyLanguages("kỹ năng làm việc nhóm", p))
}

// TestLanguageLineIsolation 行是上下文单位，英语分数不会串到日语行
func TestLanguageLineIsolation(t *testing.T) {
	p := bilingualProfile(t)

	text := "Tiếng Anh TOEIC 900\nTiếng Nhật N5"
	assert.Equal(t, []int{LanguageEnglish, LanguageBasicJapanese}, ClassifyLanguages(text, p))
}
