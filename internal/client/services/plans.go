package services

import (
	"context"
	"net/url"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// PlanService backs the admin plan-management screen. Plan listing is also
// used by the billing screen to present upgrade targets.
type PlanService struct {
	c Caller
}

func NewPlanService(c Caller) *PlanService {
	return &PlanService{c: c}
}

func (s *PlanService) List(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.c.Get(ctx, "/plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *PlanService) Create(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	var created models.Plan
	if err := s.c.Post(ctx, "/admin/plans", plan, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PlanService) Update(ctx context.Context, id string, upd models.PlanUpdate) (*models.Plan, error) {
	var plan models.Plan
	if err := s.c.Patch(ctx, "/admin/plans/"+url.PathEscape(id), upd, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, "/admin/plans/"+url.PathEscape(id), nil)
}
