package dto

import "time"

type ApplyRequest struct {
	JobOfferID  string `json:"job_offer_id"`
	CoverLetter string `json:"cover_letter"`
}

type ScheduleInterviewRequest struct {
	InterviewDate *time.Time `json:"interview_date"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}
