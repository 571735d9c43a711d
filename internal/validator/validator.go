// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"slices"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/models"
	"moneyharbor/internal/recommend"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("risk_level", validateRiskLevel)
		_ = v.RegisterValidation("horizon_label", validateHorizonLabel)
		_ = v.RegisterValidation("liquidity_label", validateLiquidityLabel)
		_ = v.RegisterValidation("knowledge_level", validateKnowledgeLevel)
		_ = v.RegisterValidation("batch_status", validateBatchStatus)
	}
}

func validateRiskLevel(fl validator.FieldLevel) bool {
	return catalog.Level(fl.Field().String()).Valid()
}

func validateHorizonLabel(fl validator.FieldLevel) bool {
	return slices.Contains(recommend.HorizonLabels, fl.Field().String())
}

func validateLiquidityLabel(fl validator.FieldLevel) bool {
	return slices.Contains(recommend.LiquidityLabels, fl.Field().String())
}

func validateKnowledgeLevel(fl validator.FieldLevel) bool {
	return catalog.KnowledgeLevel(fl.Field().String()).Valid()
}

func validateBatchStatus(fl validator.FieldLevel) bool {
	return models.BatchStatus(fl.Field().String()).Valid()
}
