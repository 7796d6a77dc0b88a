package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhilcr/exam-seating/internal/model"
)

func normalizedFixture() []model.Registration {
	return []model.Registration{
		{RegisterNo: 101, StudentName: "Anita Raj", Department: "CSE", Semester: 4, SubjectCode: "2001"},
		{RegisterNo: 101, StudentName: "Anita Raj", Department: "CSE", Semester: 4, SubjectCode: "4038"},
		{RegisterNo: 102, StudentName: "Bala Krishnan", Department: "ECE", Semester: 4, SubjectCode: "2001"},
		{RegisterNo: 103, StudentName: "Chitra Devi", Department: "MECH", Semester: 4, SubjectCode: "6000"},
	}
}

func sessionFixture() model.ExamSession {
	return model.ExamSession{
		ID:                "run-1",
		ExamDate:          "2026-03-10",
		Session:           "FN",
		SubjectCodes:      []string{"2001", "4038"},
		NumberOfHalls:     2,
		HallCapacity:      10,
		MaxSubjectPerHall: 5,
	}
}

func TestPrepareSessionFiltersAndStamps(t *testing.T) {
	prepared, err := PrepareSession(normalizedFixture(), sessionFixture())
	require.NoError(t, err)
	require.Len(t, prepared, 3) // 6000 is not in this sitting

	for _, r := range prepared {
		assert.Equal(t, "2026-03-10", r.ExamDate)
		assert.Equal(t, "FN", r.Session)
		assert.NotEqual(t, "6000", r.SubjectCode)
	}
}

func TestPrepareSessionSortOrder(t *testing.T) {
	prepared, err := PrepareSession(normalizedFixture(), sessionFixture())
	require.NoError(t, err)

	for i := 1; i < len(prepared); i++ {
		a, b := prepared[i-1], prepared[i]
		if a.SubjectCode != b.SubjectCode {
			assert.Less(t, a.SubjectCode, b.SubjectCode)
			continue
		}
		if a.Department != b.Department {
			assert.Less(t, a.Department, b.Department)
			continue
		}
		assert.Less(t, a.RegisterNo, b.RegisterNo)
	}
}

func TestPrepareSessionNoMatches(t *testing.T) {
	sess := sessionFixture()
	sess.SubjectCodes = []string{"9999"}
	_, err := PrepareSession(normalizedFixture(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no students found")
}

func TestPrepareSessionCapacityExceeded(t *testing.T) {
	sess := sessionFixture()
	sess.NumberOfHalls = 1
	sess.HallCapacity = 2
	_, err := PrepareSession(normalizedFixture(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity exceeded: 3 students but only 2 seats")
}

func TestPrepareSessionCanonicalizesConfiguredCodes(t *testing.T) {
	sess := sessionFixture()
	sess.SubjectCodes = []string{"2001.0"} // spreadsheet-shaped config input
	prepared, err := PrepareSession(normalizedFixture(), sess)
	require.NoError(t, err)
	assert.Len(t, prepared, 2)
}

func TestValidateNormalized(t *testing.T) {
	assert.NoError(t, ValidateNormalized(normalizedFixture()))

	dup := append(normalizedFixture(), model.Registration{
		RegisterNo: 101, StudentName: "Anita Raj", Department: "CSE", Semester: 4, SubjectCode: "2001",
	})
	err := ValidateNormalized(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	blank := normalizedFixture()
	blank[0].SubjectCode = "  "
	assert.ErrorContains(t, ValidateNormalized(blank), "blank subject_code")

	excel := normalizedFixture()
	excel[0].SubjectCode = "2001.0"
	assert.ErrorContains(t, ValidateNormalized(excel), "'.0'")

	noReg := normalizedFixture()
	noReg[0].RegisterNo = 0
	assert.ErrorContains(t, ValidateNormalized(noReg), "empty register_no")
}
