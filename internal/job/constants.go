package job

// Operation names used for metrics
const (
	OpApplyForJob   = "apply_for_job"
	OpResignFromJob = "resign_from_job"
	OpStartWork     = "start_work"
	OpSubmitWork    = "submit_work"
	OpAddJob        = "add_job"

	SourceWork = "work"
)

// DefaultChallengeCacheSize bounds the number of outstanding work challenges
const DefaultChallengeCacheSize = 10000

// Formatted error messages
const (
	ErrMsgJobNotFoundFmt   = "job %s: %w"
	ErrMsgInvalidJobFmt    = "invalid job: %s: %w"
	ErrMsgWorkAbandonedFmt = "work abandoned: %w"
)

// Database operation error messages
const (
	ErrMsgGetJobsFailed           = "failed to get jobs: %w"
	ErrMsgGetJobFailed            = "failed to get job: %w"
	ErrMsgInsertJobFailed         = "failed to insert job: %w"
	ErrMsgGetEmploymentFailed     = "failed to get employment: %w"
	ErrMsgWriteEmploymentFailed   = "failed to write employment: %w"
	ErrMsgGetApplicationFailed    = "failed to get last application: %w"
	ErrMsgRecordApplicationFailed = "failed to record application: %w"
	ErrMsgGetAccountFailed        = "failed to get account: %w"
	ErrMsgUpdateAccountFailed     = "failed to update account: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgApplicationAccepted = "Job application accepted"
	LogMsgApplicationRejected = "Job application rejected"
	LogMsgResigned            = "User resigned from job"
	LogMsgChallengeIssued     = "Work challenge issued"
	LogMsgWorkPaid            = "Work paid out"
	LogMsgWorkFailed          = "Work answer not accepted"
	LogMsgJobAdded            = "Job added"
)
