package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDOBOrdinalAndMonthName 两种月份名顺序归一化到同一结果
func TestDOBOrdinalAndMonthName(t *testing.T) {
	cases := []string{
		"Date of birth: 31st October 1978",
		"DOB: October 31, 1978",
		"31 October 1978",
	}
	for _, text := range cases {
		got := resolveDOB(text)
		require.NotNil(t, got, text)
		assert.Equal(t, "31/10/1978", *got, text)
	}
}

// TestDOBNumeric 纯数字格式零填充并归一化
func TestDOBNumeric(t *testing.T) {
	got := resolveDOB("Ngày sinh: 5/3/1990")
	require.NotNil(t, got)
	assert.Equal(t, "05/03/1990", *got)

	got = resolveDOB("sinh ngày 31/10/1978 tại Hà Nội")
	require.NotNil(t, got)
	assert.Equal(t, "31/10/1978", *got)
}

// TestDOBTwoDigitYear 两位年份：<30 归到2000年代，其余1900年代
func TestDOBTwoDigitYear(t *testing.T) {
	got := resolveDOB("dob: 15 March 05")
	require.NotNil(t, got)
	assert.Equal(t, "15/03/2005", *got)

	got = resolveDOB("dob: 15 March 78")
	require.NotNil(t, got)
	assert.Equal(t, "15/03/1978", *got)
}

// TestDOBAbbreviatedMonth 月份缩写
func TestDOBAbbreviatedMonth(t *testing.T) {
	got := resolveDOB("born 2 Sept 1995")
	require.NotNil(t, got)
	assert.Equal(t, "02/09/1995", *got)
}

// TestDOBNotFound 无出生日期时返回nil
func TestDOBNotFound(t *testing.T) {
	assert.Nil(t, resolveDOB("kỹ sư phần mềm với 5 năm kinh nghiệm"))
	assert.Nil(t, resolveDOB(""))
}
