package storage

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/internal/models"
)

// Column layouts are part of the on-disk contract and must not change.
var (
	majorHeaders   = []string{"id_carrera", "nombre_carrera"}
	studentHeaders = []string{"id_estudiante", "nombre", "id_carrera"}
	courseHeaders  = []string{"id_curso", "nombre_curso", "creditos"}
)

// parseCSV reads all records and returns the rows keyed by header name.
// Column order in the file is not assumed.
func (f *Files) parseCSV(name string) []map[string]string {
	raw, ok := f.readFile(name)
	if !ok {
		return nil
	}
	r := csv.NewReader(bytes.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		f.logger.Warn("collection file corrupt, using empty collection",
			zap.String("file", name), zap.Error(err))
		return nil
	}
	if len(records) < 2 {
		return nil
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (f *Files) saveCSV(name string, headers []string, rows [][]string) error {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(headers); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.writeAtomic(name, buf)
}

// LoadMajors reads the major collection.
func (f *Files) LoadMajors() []models.Major {
	rows := f.parseCSV(f.cfg.MajorsFile)
	majors := make([]models.Major, 0, len(rows))
	for _, row := range rows {
		majors = append(majors, models.Major{
			ID:   row["id_carrera"],
			Name: row["nombre_carrera"],
		})
	}
	return majors
}

// SaveMajors overwrites the major collection file.
func (f *Files) SaveMajors(majors []models.Major) error {
	rows := make([][]string, 0, len(majors))
	for _, m := range majors {
		rows = append(rows, []string{m.ID, m.Name})
	}
	return f.saveCSV(f.cfg.MajorsFile, majorHeaders, rows)
}

// LoadStudents reads the student collection.
func (f *Files) LoadStudents() []models.Student {
	rows := f.parseCSV(f.cfg.StudentsFile)
	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.Student{
			ID:      row["id_estudiante"],
			Name:    row["nombre"],
			MajorID: row["id_carrera"],
		})
	}
	return students
}

// SaveStudents overwrites the student collection file.
func (f *Files) SaveStudents(students []models.Student) error {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.ID, s.Name, s.MajorID})
	}
	return f.saveCSV(f.cfg.StudentsFile, studentHeaders, rows)
}

// LoadCourses reads the course collection. Unparsable credit values degrade
// to 0 with a warning, never an abort.
func (f *Files) LoadCourses() []models.Course {
	rows := f.parseCSV(f.cfg.CoursesFile)
	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		credits, err := strconv.Atoi(row["creditos"])
		if err != nil {
			f.logger.Warn("invalid credit value, defaulting to 0",
				zap.String("id_curso", row["id_curso"]),
				zap.String("creditos", row["creditos"]))
			credits = 0
		}
		courses = append(courses, models.Course{
			ID:      row["id_curso"],
			Name:    row["nombre_curso"],
			Credits: credits,
		})
	}
	return courses
}

// SaveCourses overwrites the course collection file.
func (f *Files) SaveCourses(courses []models.Course) error {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{c.ID, c.Name, strconv.Itoa(c.Credits)})
	}
	return f.saveCSV(f.cfg.CoursesFile, courseHeaders, rows)
}
