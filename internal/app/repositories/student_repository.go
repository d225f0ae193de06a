package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/dberrors"
)

// sortColumns whitelists the columns a listing may be ordered by. Anything
// else falls back to the business key.
var sortColumns = map[string]string{
	"student_id":      "student_id",
	"first_name":      "first_name",
	"last_name":       "last_name",
	"email":           "email",
	"course":          "course",
	"department":      "department",
	"year_level":      "year_level",
	"status":          "status",
	"enrollment_date": "enrollment_date",
}

const studentColumns = `id, student_id, first_name, middle_name, last_name, email, phone,
	department, course, year_level, status, enrollment_date`

// StudentRepository handles database operations for enrollment records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// orderClause builds a safe ORDER BY fragment from user-supplied sort params.
func orderClause(sortColumn, sortDirection string) string {
	column, ok := sortColumns[sortColumn]
	if !ok {
		column = "student_id"
	}
	direction := "ASC"
	if strings.EqualFold(sortDirection, "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

// List retrieves one page of records ordered by the requested column and
// returns the total count over the full set.
func (r *StudentRepository) List(ctx context.Context, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM students %s LIMIT $1 OFFSET $2`,
		studentColumns, orderClause(sortColumn, sortDirection))

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Search retrieves one page of records whose student ID, name, email or
// course matches the term, with the same ordering rules as List.
func (r *StudentRepository) Search(ctx context.Context, term, sortColumn, sortDirection string, offset uint64, limit int) ([]models.Student, int64, error) {
	pattern := "%" + term + "%"
	filter := `WHERE student_id ILIKE $1
		OR first_name ILIKE $1
		OR last_name ILIKE $1
		OR email ILIKE $1
		OR course ILIKE $1`

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM students %s`, filter)
	if err := r.db.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting search results: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM students %s %s LIMIT $2 OFFSET $3`,
		studentColumns, filter, orderClause(sortColumn, sortDirection))

	rows, err := r.db.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByStudentID retrieves a record by its business key.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_id = $1`, studentColumns)

	var s models.Student
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&s.ID,
		&s.StudentID,
		&s.FirstName,
		&s.MiddleName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Department,
		&s.Course,
		&s.YearLevel,
		&s.Status,
		&s.EnrollmentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &s, nil
}

// Create inserts a new record. The enrollment date is assigned by the
// database; a duplicate business key maps to ErrStudentIDAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, first_name, middle_name, last_name, email, phone,
			department, course, year_level, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, enrollment_date
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.Email,
		student.Phone,
		student.Department,
		student.Course,
		student.YearLevel,
		student.Status,
	).Scan(&student.ID, &student.EnrollmentDate)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update rewrites the editable fields of the record addressed by its
// business key. The key itself and the enrollment date are immutable.
func (r *StudentRepository) Update(ctx context.Context, studentID string, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, middle_name = $2, last_name = $3, email = $4, phone = $5,
			department = $6, course = $7, year_level = $8, status = $9
		WHERE student_id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.Email,
		student.Phone,
		student.Department,
		student.Course,
		student.YearLevel,
		student.Status,
		studentID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes the record addressed by its business key.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func scanStudents(rows pgx.Rows) ([]models.Student, error) {
	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID,
			&s.StudentID,
			&s.FirstName,
			&s.MiddleName,
			&s.LastName,
			&s.Email,
			&s.Phone,
			&s.Department,
			&s.Course,
			&s.YearLevel,
			&s.Status,
			&s.EnrollmentDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
