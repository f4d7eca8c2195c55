package models

import "time"

// ShortLinkLength длина короткой ссылки.
const ShortLinkLength = 8

// Click запись о переходе по короткой ссылке. Живет только внутри Link,
// собственного идентификатора не имеет.
type Click struct {
	ClickTime  time.Time `json:"click_time"`
	IPAddr     string    `json:"ip_addr"`
	UserDevice string    `json:"user_device"`
}

// Link структура модели хранения ссылки. Owner — денормализованная копия
// username владельца (не внешний ключ), при переименовании пользователя
// переписывается каскадно. Clicks хранится единым json-документом.
type Link struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	OriginalLink string     `gorm:"size:2048" json:"original_link"`
	ShortLink    string     `gorm:"index:idx_links_short_link,unique;size:8" json:"short_link"`
	Remarks      string     `json:"remarks,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Owner        string     `gorm:"index:idx_links_owner;size:64" json:"owner"`
	Clicks       []Click    `gorm:"serializer:json" json:"clicks"`
}
