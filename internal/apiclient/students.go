package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	studentModel "github.com/festy23/sportsday/internal/student/model"
)

// ListStudents returns every registered student.
func (c *Client) ListStudents(ctx context.Context) ([]studentModel.Student, error) {
	var students []studentModel.Student
	if err := c.do(ctx, http.MethodGet, "/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// ListStudentsBySport returns students eligible to join a team for sport.
func (c *Client) ListStudentsBySport(ctx context.Context, sport string) ([]studentModel.Student, error) {
	var students []studentModel.Student
	if err := c.do(ctx, http.MethodGet, "/students/by-sport/"+url.PathEscape(sport), nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent registers a student.
func (c *Client) CreateStudent(ctx context.Context, req studentModel.CreateStudentRequest) error {
	return c.do(ctx, http.MethodPost, "/students", req, nil)
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/students/"+strconv.FormatInt(id, 10), nil, nil)
}
