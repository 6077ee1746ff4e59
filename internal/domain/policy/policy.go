// Package policy centralizes the role and ownership rules of the job board.
// Every guard returns a Verdict so callers can either branch on it or turn
// it into an authorization error.
package policy

import (
	"jobboard-service/internal/domain"
	"jobboard-service/internal/domain/entities"
)

type Verdict struct {
	Allowed bool
	Reason  string
}

func allow() Verdict {
	return Verdict{Allowed: true}
}

func deny(reason string) Verdict {
	return Verdict{Reason: reason}
}

// Err returns nil for an allowed verdict and a KindAuthorization error otherwise.
func (v Verdict) Err() error {
	if v.Allowed {
		return nil
	}
	return domain.Forbidden(v.Reason)
}

func CanPostJobs(caller entities.Caller) Verdict {
	if !caller.IsEmployer() {
		return deny("Only employers can post jobs")
	}
	return allow()
}

func CanUpdateJob(caller entities.Caller, job *entities.Job) Verdict {
	if job.EmployerID != caller.UserID {
		return deny("You can only update your own jobs")
	}
	return allow()
}

func CanDeleteJob(caller entities.Caller, job *entities.Job) Verdict {
	if job.EmployerID != caller.UserID {
		return deny("You can only delete your own jobs")
	}
	return allow()
}

func CanApply(caller entities.Caller) Verdict {
	if caller.IsEmployer() {
		return deny("Employers cannot apply for jobs")
	}
	return allow()
}

// CanViewApplication admits the applicant and the employer owning the job.
func CanViewApplication(caller entities.Caller, app *entities.ApplicationView) Verdict {
	if app.UserID == caller.UserID {
		return allow()
	}
	if caller.IsEmployer() && app.EmployerID == caller.UserID {
		return allow()
	}
	return deny("You do not have access to this application")
}

func CanSetApplicationStatus(caller entities.Caller, app *entities.ApplicationView) Verdict {
	if !caller.IsEmployer() || app.EmployerID != caller.UserID {
		return deny("Only the employer who posted this job can update application status")
	}
	return allow()
}

func CanDownloadResume(caller entities.Caller, app *entities.ApplicationView) Verdict {
	if v := CanViewApplication(caller, app); !v.Allowed {
		return deny("You do not have access to this resume")
	}
	return allow()
}
