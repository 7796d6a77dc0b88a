package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wideExport = `Register No,Student Name,Branch,Semester,Sub1,Sub2,Sub3
101,Anita Raj,CSE,4,2001,4038,
102,Bala Krishnan,ECE,4,2001.0,,
103,Chitra Devi,MECH,4,6000,2001,4038
`

func TestNormalizeMeltsWideRows(t *testing.T) {
	regs, err := Normalize(strings.NewReader(wideExport))
	require.NoError(t, err)
	require.Len(t, regs, 6)

	perStudent := make(map[int64]int)
	for _, r := range regs {
		perStudent[r.RegisterNo]++
		assert.NotEmpty(t, r.SubjectCode)
		assert.Empty(t, r.ExamDate, "exam date is stamped by the preparer, not here")
	}
	assert.Equal(t, 2, perStudent[101])
	assert.Equal(t, 1, perStudent[102])
	assert.Equal(t, 3, perStudent[103])

	// Sorted by subject code.
	for i := 1; i < len(regs); i++ {
		assert.LessOrEqual(t, regs[i-1].SubjectCode, regs[i].SubjectCode)
	}
}

func TestNormalizeCanonicalizesSubjectCodes(t *testing.T) {
	regs, err := Normalize(strings.NewReader(wideExport))
	require.NoError(t, err)
	for _, r := range regs {
		assert.NotContains(t, r.SubjectCode, ".0")
	}
	// Student 102's "2001.0" collapses onto the same paper as plain "2001".
	codes := make(map[string]bool)
	for _, r := range regs {
		if r.RegisterNo == 102 {
			codes[r.SubjectCode] = true
		}
	}
	assert.True(t, codes["2001"])
}

func TestNormalizeMissingColumn(t *testing.T) {
	csv := "Register No,Student Name,Semester,Sub1\n101,Anita,4,2001\n"
	_, err := Normalize(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column: Branch")
}

func TestNormalizeNoSubjectColumns(t *testing.T) {
	csv := "Register No,Student Name,Branch,Semester\n101,Anita,CSE,4\n"
	_, err := Normalize(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subject columns")
}

func TestNormalizeAllCellsBlank(t *testing.T) {
	csv := "Register No,Student Name,Branch,Semester,Sub1\n101,Anita,CSE,4,\n"
	_, err := Normalize(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid subject registrations")
}

func TestCanonicalSubjectCode(t *testing.T) {
	assert.Equal(t, "2001", CanonicalSubjectCode(" 2001.0 "))
	assert.Equal(t, "2001", CanonicalSubjectCode("2001"))
	assert.Equal(t, "", CanonicalSubjectCode("   "))
	assert.Equal(t, "MA101", CanonicalSubjectCode("MA101"))
}
