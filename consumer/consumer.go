// Package consumer 提供入站事件的消费接入：物品生命周期、交互、评分。
//
// 传输层基于 watermill：订阅后端（Kafka/NATS/内存 channel）由部署方
// 注入，handler 只关心载荷语义。handler 返回错误即 nack，重试/死信
// 策略由订阅方按自身配置执行——核心拒绝事件而不是静默丢弃。
package consumer

import (
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/feature"
	"github.com/rushteam/mediarec/profile"
)

// 订阅的事件主题。
const (
	TopicItemCreated = "item-created"
	TopicItemUpdated = "item-updated"
	TopicItemDeleted = "item-deleted"
	TopicInteraction = "engagement-created"
	TopicRating      = "rating-created"
)

// Handlers 将入站事件落到特征存储与画像更新器上。
type Handlers struct {
	Features core.FeatureStore
	Updater  *profile.Updater
	Logger   *slog.Logger

	encoder feature.GenreEncoder
}

func NewHandlers(features core.FeatureStore, updater *profile.Updater, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		Features: features,
		Updater:  updater,
		Logger:   logger,
	}
}

// HandleItemUpsert 处理物品发布/题材变更：编码题材向量并 upsert 特征记录。
// 未知题材名称跳过并告警（编码器契约），不阻塞事件。
func (h *Handlers) HandleItemUpsert(msg *message.Message) error {
	var ev core.ItemEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return core.NewDomainError(core.ModuleConsumer, core.ErrorCodeInvalidInput, "consumer: malformed item event: "+err.Error())
	}

	vec, unknown := h.encoder.EncodeNames(ev.Genres)
	if len(unknown) > 0 {
		h.Logger.Warn("skipped unknown genres while encoding item features",
			"item_id", ev.ItemID, "genres", unknown)
	}

	feat := core.NewItemFeature(ev.ItemID, vec)
	feat.PopularityScore = ev.PopularityScore
	return h.Features.Save(msg.Context(), feat)
}

// HandleItemDeleted 处理物品下架：删除特征记录（幂等）。
func (h *Handlers) HandleItemDeleted(msg *message.Message) error {
	var ev core.ItemEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return core.NewDomainError(core.ModuleConsumer, core.ErrorCodeInvalidInput, "consumer: malformed item event: "+err.Error())
	}
	return h.Features.Delete(msg.Context(), ev.ItemID)
}

// HandleInteraction 处理交互事件，驱动画像向量 nudge。
func (h *Handlers) HandleInteraction(msg *message.Message) error {
	var ev core.InteractionEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return core.NewDomainError(core.ModuleConsumer, core.ErrorCodeInvalidInput, "consumer: malformed interaction event: "+err.Error())
	}

	err := h.Updater.ApplyInteraction(msg.Context(), ev)
	if err != nil {
		h.Logger.Error("interaction event rejected",
			"user_id", ev.UserID, "item_id", ev.ItemID, "type", ev.Type, "err", err)
	}
	return err
}

// HandleRating 处理评分迁移事件，驱动参与度分迁移。
func (h *Handlers) HandleRating(msg *message.Message) error {
	var ev core.RatingEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return core.NewDomainError(core.ModuleConsumer, core.ErrorCodeInvalidInput, "consumer: malformed rating event: "+err.Error())
	}

	err := h.Updater.ApplyRating(msg.Context(), ev)
	if err != nil {
		h.Logger.Error("rating event rejected",
			"user_id", ev.UserID, "item_id", ev.ItemID, "err", err)
	}
	return err
}

// NewRouter 创建 watermill 路由，日志走 slog。
func NewRouter(logger *slog.Logger) (*message.Router, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
}

// AddHandlers 在路由上注册全部事件 handler。
// 同一用户事件的串行化依赖存储层版本 CAS，handler 本身无并发假设。
func AddHandlers(router *message.Router, sub message.Subscriber, h *Handlers) {
	router.AddNoPublisherHandler("mediarec.item_created", TopicItemCreated, sub, h.HandleItemUpsert)
	router.AddNoPublisherHandler("mediarec.item_updated", TopicItemUpdated, sub, h.HandleItemUpsert)
	router.AddNoPublisherHandler("mediarec.item_deleted", TopicItemDeleted, sub, h.HandleItemDeleted)
	router.AddNoPublisherHandler("mediarec.interaction", TopicInteraction, sub, h.HandleInteraction)
	router.AddNoPublisherHandler("mediarec.rating", TopicRating, sub, h.HandleRating)
}
