package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/usecase"
	"campuskart/pkg/errors"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	itemHandler         *ItemHandler
	chatHandler         *ChatHandler
	notificationHandler *NotificationHandler
	eventHandler        *EventHandler
	recruitmentHandler  *RecruitmentHandler
	supportHandler      *SupportHandler
	collegeHandler      *CollegeHandler
	adminHandler        *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	itemUseCase *usecase.ItemUseCase,
	chatUseCase *usecase.ChatUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	eventUseCase *usecase.EventUseCase,
	recruitmentUseCase *usecase.RecruitmentUseCase,
	supportUseCase *usecase.SupportUseCase,
	collegeUseCase *usecase.CollegeUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	itemHandler = NewItemHandler(itemUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	eventHandler = NewEventHandler(eventUseCase)
	recruitmentHandler = NewRecruitmentHandler(recruitmentUseCase)
	supportHandler = NewSupportHandler(supportUseCase)
	collegeHandler = NewCollegeHandler(collegeUseCase)
	adminHandler = NewAdminHandler(adminUseCase, eventUseCase, collegeUseCase, supportUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetRecruitmentHandler() *RecruitmentHandler {
	return recruitmentHandler
}

func GetSupportHandler() *SupportHandler {
	return supportHandler
}

func GetCollegeHandler() *CollegeHandler {
	return collegeHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}
