package handler

import (
	"listed/internal/usecase"
)

var (
	userHandler       *UserHandler
	pitchHandler      *PitchHandler
	offerHandler      *OfferHandler
	engagementHandler *EngagementHandler
	complaintHandler  *ComplaintHandler
	inquiryHandler    *InquiryHandler
	messageHandler    *MessageHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	pitchUseCase *usecase.PitchUseCase,
	offerUseCase *usecase.OfferUseCase,
	engagementUseCase *usecase.EngagementUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	messageUseCase *usecase.MessageUseCase,
	userRepoReader UserReader,
) {
	userHandler = NewUserHandler(userUseCase)
	pitchHandler = NewPitchHandler(pitchUseCase, userRepoReader)
	offerHandler = NewOfferHandler(offerUseCase, userRepoReader)
	engagementHandler = NewEngagementHandler(engagementUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase, userRepoReader)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPitchHandler() *PitchHandler {
	return pitchHandler
}

func GetOfferHandler() *OfferHandler {
	return offerHandler
}

func GetEngagementHandler() *EngagementHandler {
	return engagementHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}
