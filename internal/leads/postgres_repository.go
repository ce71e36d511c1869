package leads

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgxpool.Pool the repository uses. pgxmock satisfies it
// in tests.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores demo requests in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

const insertLeadQuery = `
	INSERT INTO leads (
		id, email, first_name, last_name, role, company_name, company_type,
		employees_range, timeline, utm_source, utm_medium, utm_campaign,
		utm_term, utm_content, referrer, landing_page, consent_authorized,
		status, security_environment
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	RETURNING created_at
`

const insertQuestionnaireQuery = `
	INSERT INTO questionnaire_responses (
		lead_id, opps_reviewed_month, bids_submitted_month, max_bids_month,
		labor_hours_per_bid_range, people_per_bid_range, cycle_time_range,
		hours_week_search_range, constraint_primary, constraint_other,
		skip_opps_frequency, stages_most_labor, loss_reason_primary,
		loss_reason_other, win_rate_range, avg_value_passed_range,
		opp_sources, proposal_tools, crm, finance_system,
		past_performance_locations, resume_management, teaming_approach,
		portals_used, cmmc_status, dcaa_exposure, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
`

// CreateDemoRequest inserts the lead row, then the questionnaire row when one
// was supplied. A lead failure aborts the request; a questionnaire failure is
// reported as OutcomePartial and never invalidates the stored lead.
func (r *PostgresRepository) CreateDemoRequest(ctx context.Context, lead *Lead, q *QuestionnaireResponse) (CreateResult, error) {
	id := lead.ID
	if id == "" {
		id = uuid.NewString()
	}

	if err := r.db.QueryRow(ctx, insertLeadQuery,
		id,
		lead.Email,
		lead.FirstName,
		lead.LastName,
		lead.Role,
		lead.CompanyName,
		lead.CompanyType,
		lead.EmployeesRange,
		lead.Timeline,
		lead.UTMSource,
		lead.UTMMedium,
		lead.UTMCampaign,
		lead.UTMTerm,
		lead.UTMContent,
		lead.Referrer,
		lead.LandingPage,
		lead.ConsentAuthorized,
		lead.Status,
		lead.SecurityEnvironment,
	).Scan(&lead.CreatedAt); err != nil {
		return CreateResult{}, fmt.Errorf("leads: insert failed: %w", err)
	}
	lead.ID = id

	result := CreateResult{LeadID: id, Outcome: OutcomeStored}
	if q == nil {
		return result, nil
	}

	if _, err := r.db.Exec(ctx, insertQuestionnaireQuery,
		id,
		q.OppsReviewedMonth,
		q.BidsSubmittedMonth,
		q.MaxBidsMonth,
		q.LaborHoursPerBidRange,
		q.PeoplePerBidRange,
		q.CycleTimeRange,
		q.HoursWeekSearchRange,
		q.ConstraintPrimary,
		q.ConstraintOther,
		q.SkipOppsFrequency,
		q.StagesMostLabor,
		q.LossReasonPrimary,
		q.LossReasonOther,
		q.WinRateRange,
		q.AvgValuePassedRange,
		q.OppSources,
		q.ProposalTools,
		q.CRM,
		q.FinanceSystem,
		q.PastPerformanceLocations,
		q.ResumeManagement,
		q.TeamingApproach,
		q.PortalsUsed,
		q.CMMCStatus,
		q.DCAAExposure,
		q.Notes,
	); err != nil {
		result.Outcome = OutcomePartial
		result.QuestionnaireErr = fmt.Errorf("leads: questionnaire insert failed: %w", err)
	}

	return result, nil
}
