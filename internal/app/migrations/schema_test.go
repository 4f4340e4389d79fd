package migrations

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
)

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	varcharColRe  = regexp.MustCompile(`(?m)^\s+(\w+)\s+VARCHAR\((\d+)\)`)
	alterColRe    = regexp.MustCompile(`ALTER TABLE (\w+) ALTER COLUMN (\w+) TYPE VARCHAR\((\d+)\)`)
)

// varcharWidths replays the repository migrations and returns table -> column -> width
func varcharWidths(t *testing.T) map[string]map[string]int {
	t.Helper()
	dir := filepath.Join("..", "..", "..", "migrations")
	files, err := PendingFiles(dir)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	widths := map[string]map[string]int{}
	for _, file := range files {
		raw, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		sql := string(raw)

		for _, table := range createTableRe.FindAllStringSubmatch(sql, -1) {
			cols := map[string]int{}
			for _, col := range varcharColRe.FindAllStringSubmatch(table[2], -1) {
				cols[col[1]], _ = strconv.Atoi(col[2])
			}
			widths[table[1]] = cols
		}
		for _, alter := range alterColRe.FindAllStringSubmatch(sql, -1) {
			widths[alter[1]][alter[2]], _ = strconv.Atoi(alter[3])
		}
	}
	return widths
}

// maxLengths returns json name -> max= binding limit of req's fields
func maxLengths(req interface{}) map[string]int {
	limits := map[string]int{}
	rt := reflect.TypeOf(req)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		for _, rule := range strings.Split(field.Tag.Get("binding"), ",") {
			if v, ok := strings.CutPrefix(rule, "max="); ok {
				limits[name], _ = strconv.Atoi(v)
			}
		}
	}
	return limits
}

func TestRequestLimitsFitColumns(t *testing.T) {
	widths := varcharWidths(t)

	cases := []struct {
		table string
		req   interface{}
	}{
		{"students", dto.CreateStudentRequest{}},
		{"students", dto.UpdateStudentRequest{}},
		{"faculty", dto.CreateFacultyRequest{}},
		{"faculty", dto.UpdateFacultyRequest{}},
	}
	for _, tc := range cases {
		cols, ok := widths[tc.table]
		require.True(t, ok, tc.table)
		for name, limit := range maxLengths(tc.req) {
			width, ok := cols[name]
			if !ok {
				continue
			}
			assert.LessOrEqual(t, limit, width, "%s.%s: %T allows %d", tc.table, name, tc.req, limit)
		}
	}

	assert.Equal(t, 100, widths["students"]["section"])
	assert.Equal(t, 255, widths["students"]["parent_relationship"])
	assert.Equal(t, 255, widths["students"]["student_id"])
}
