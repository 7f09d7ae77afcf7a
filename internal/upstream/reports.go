package upstream

import (
	"context"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
)

// Report endpoints wrap their rows in a named member; each fetch unwraps
// it and guarantees a non-nil slice.

// TopStudents fetches the five highest-GPA students.
func (c *Client) TopStudents(ctx context.Context) ([]models.TopStudent, error) {
	var out struct {
		Top5 []models.TopStudent `json:"top_5"`
	}
	if err := c.Get(ctx, "reports/top-5-students/", &out); err != nil {
		return nil, err
	}
	if out.Top5 == nil {
		return []models.TopStudent{}, nil
	}
	return out.Top5, nil
}

// Debtors fetches students with outstanding payments.
func (c *Client) Debtors(ctx context.Context) ([]models.Debtor, error) {
	var out struct {
		Debtors []models.Debtor `json:"debtors"`
	}
	if err := c.Get(ctx, "reports/debtors/", &out); err != nil {
		return nil, err
	}
	if out.Debtors == nil {
		return []models.Debtor{}, nil
	}
	return out.Debtors, nil
}

// StudentsAboveAverage fetches students whose grade in a course exceeds
// that course's average.
func (c *Client) StudentsAboveAverage(ctx context.Context) ([]models.AboveAverageStudent, error) {
	var out struct {
		Results []models.AboveAverageStudent `json:"results"`
	}
	if err := c.Get(ctx, "reports/students-above-average/", &out); err != nil {
		return nil, err
	}
	if out.Results == nil {
		return []models.AboveAverageStudent{}, nil
	}
	return out.Results, nil
}
