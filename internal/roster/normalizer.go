// Package roster owns the CSV boundary around the seating engine: melting
// the wide registration export into one row per (student, subject),
// validating the normalized data, preparing a session-specific slice of it,
// writing the seat chart artifact and auditing results.  The engine itself
// never touches a file; everything here feeds it or consumes its output.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/adhilcr/exam-seating/internal/model"
)

// Column names expected in the wide export.  Subject columns are detected by
// prefix (Sub1, Sub2, ...), so the export may carry any number of papers per
// student.
const (
	colRegisterNo  = "Register No"
	colStudentName = "Student Name"
	colBranch      = "Branch"
	colSemester    = "Semester"
	subjectPrefix  = "Sub"
)

// Normalize melts a wide registration export into one Registration per
// non-blank subject cell.  Subject codes are canonicalized to a fixed string
// form: trimmed, with Excel-style ".0" suffixes stripped, so "2001.0" and
// "2001" are the same paper.  The result is sorted by subject code; exam
// date and session are left blank for the preparer to stamp.
//
// The wide layout has a dynamic number of subject columns, so it is read
// with encoding/csv rather than struct tags.
func Normalize(r io.Reader) ([]model.Registration, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	var subjectCols []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		idx[name] = i
		if strings.HasPrefix(name, subjectPrefix) {
			subjectCols = append(subjectCols, i)
		}
	}
	for _, required := range []string{colRegisterNo, colStudentName, colBranch, colSemester} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}
	if len(subjectCols) == 0 {
		return nil, fmt.Errorf("no subject columns found (%s1, %s2, ...)", subjectPrefix, subjectPrefix)
	}

	var regs []model.Registration
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		registerNo, err := strconv.ParseInt(strings.TrimSpace(row[idx[colRegisterNo]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid register number: %w", line, err)
		}
		semester, err := strconv.Atoi(strings.TrimSpace(row[idx[colSemester]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid semester: %w", line, err)
		}

		for _, ci := range subjectCols {
			code := CanonicalSubjectCode(row[ci])
			if code == "" {
				continue
			}
			regs = append(regs, model.Registration{
				RegisterNo:  registerNo,
				StudentName: strings.TrimSpace(row[idx[colStudentName]]),
				Department:  strings.TrimSpace(row[idx[colBranch]]),
				Semester:    semester,
				SubjectCode: code,
			})
		}
	}
	if len(regs) == 0 {
		return nil, fmt.Errorf("no valid subject registrations found")
	}

	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].SubjectCode < regs[j].SubjectCode
	})
	return regs, nil
}

// CanonicalSubjectCode trims a raw subject cell and strips the ".0" tail
// spreadsheets append to numeric codes.  Blank cells canonicalize to "".
func CanonicalSubjectCode(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".0")
}
