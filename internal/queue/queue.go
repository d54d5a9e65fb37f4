package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

const (
	TaskTypeNotifyPoster     = "notify:poster"
	TaskTypeNotifyGeneration = "notify:generation"
)

type PosterNotifyPayload struct {
	PostID  string `json:"post_id"`
	Trigger string `json:"trigger"`
}

type GenerationNotifyPayload struct {
	IdeaID string `json:"idea_id"`
}

// Dispatcher hands webhook notifications off to the task queue. Services call
// it after their own writes commit; a dispatch failure is the caller's to log
// and swallow, never to propagate.
type Dispatcher interface {
	DispatchPosterNotify(postID, trigger string) error
	DispatchGenerationNotify(ideaID string) error
}

type asynqDispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) Dispatcher {
	return &asynqDispatcher{client: client}
}

func (d *asynqDispatcher) DispatchPosterNotify(postID, trigger string) error {
	return d.enqueue(TaskTypeNotifyPoster, PosterNotifyPayload{PostID: postID, Trigger: trigger})
}

func (d *asynqDispatcher) DispatchGenerationNotify(ideaID string) error {
	return d.enqueue(TaskTypeNotifyGeneration, GenerationNotifyPayload{IdeaID: ideaID})
}

func (d *asynqDispatcher) enqueue(taskType string, payload any) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(taskType, taskPayload)

	_, err = d.client.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("Task enqueued: %s %s", taskType, taskPayload)
	return nil
}
