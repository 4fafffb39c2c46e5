package common

import "sync"

type Job func() error

// JobQueue runs jobs one by one on a single background goroutine.
type JobQueue struct {
	jobsChannel chan Job
	waitGroup   sync.WaitGroup
	stopOnce    sync.Once
	logger      Logger
}

func NewJobQueue(capacity int, logger Logger) *JobQueue {
	queue := &JobQueue{
		jobsChannel: make(chan Job, capacity),
		logger:      logger,
	}
	queue.waitGroup.Add(1)
	go queue.run()
	return queue
}

// Enqueue schedules the job without blocking. Returns false if the queue is full.
func (j *JobQueue) Enqueue(job Job) bool {
	select {
	case j.jobsChannel <- job:
		return true
	default:
		return false
	}
}

// Stop waits until all the jobs enqueued so far are processed. Enqueue must not be called after Stop.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.jobsChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for job := range j.jobsChannel {
		err := job()
		if err != nil {
			j.logger.Log("failed to process a job: " + err.Error())
		}
	}
}
