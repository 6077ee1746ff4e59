package entities

type ValidatedJob struct {
	*Job
}

func NewValidatedJob(job *Job) (*ValidatedJob, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}

	return &ValidatedJob{Job: job}, nil
}

func (vj *ValidatedJob) GetJob() *Job {
	return vj.Job
}

func (vj *ValidatedJob) ApplyPatch(p JobPatch) error {
	if err := vj.Job.ApplyPatch(p); err != nil {
		return err
	}

	// Re-validate after update
	return vj.Job.validate()
}
