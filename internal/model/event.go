package model

import (
	"time"

	"gorm.io/gorm"
)

// Event 社区活动，只读
type Event struct {
	gorm.Model
	Title       string    `gorm:"column:title;type:varchar(200);not null;comment:活动名称"`
	Description string    `gorm:"column:description;type:TEXT;comment:活动介绍"`
	Location    string    `gorm:"column:location;type:varchar(200);comment:地点"`
	StartsAt    time.Time `gorm:"column:starts_at;index;comment:开始时间"`
}

func (Event) TableName() string {
	return "event"
}

// Notice 公告，只读
type Notice struct {
	gorm.Model
	Title   string `gorm:"column:title;type:varchar(200);not null;comment:公告标题"`
	Content string `gorm:"column:content;type:TEXT;comment:公告内容"`
}

func (Notice) TableName() string {
	return "notice"
}
