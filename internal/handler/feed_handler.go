package handler

import (
	"net/http"

	"community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler 活动与公告页面
type FeedHandler struct {
	feedSvc service.FeedService
	page    *Page
}

func NewFeedHandler(feedSvc service.FeedService, page *Page) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc, page: page}
}

// EventList GET /community/events
func (h *FeedHandler) EventList(c *gin.Context) {
	events, err := h.feedSvc.ListEvents()
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "event_list.html", gin.H{"Events": events})
}

// NoticeList GET /community/notices
func (h *FeedHandler) NoticeList(c *gin.Context) {
	notices, err := h.feedSvc.ListNotices()
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "notice_list.html", gin.H{"Notices": notices})
}
