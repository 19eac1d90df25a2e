package models

import (
	"github.com/google/uuid"
	databasetypes "github.com/graylake-dev/postureguard/database/types"
	"github.com/graylake-dev/postureguard/dtos"
)

type SecurityReview struct {
	Model
	Title       string            `json:"title" gorm:"type:text;not null"`
	Description string            `json:"description" gorm:"type:text"`
	Status      dtos.ReviewStatus `json:"status" gorm:"type:text;not null;default:'Pending'"`

	// DocumentID is assigned by the server iff document metadata is supplied
	// on create. The actual document lives outside this system.
	DocumentID   *uuid.UUID `json:"documentId" gorm:"type:uuid"`
	DocumentName *string    `json:"documentName" gorm:"type:text"`
	DocumentType *string    `json:"documentType" gorm:"type:text"`
	DocumentSize *int64     `json:"documentSize"`

	AIAnalysis         databasetypes.JSONB `json:"aiAnalysis" gorm:"type:jsonb;column:ai_analysis"`
	AIAnalysisComplete bool                `json:"aiAnalysisComplete" gorm:"not null;default:false;column:ai_analysis_complete"`

	ContainerID *uint      `json:"containerId" gorm:"index"`
	Container   *Container `json:"-" gorm:"foreignKey:ContainerID;references:ID;constraint:OnDelete:CASCADE;"`

	ReviewerID *uint `json:"reviewerId"`
	Reviewer   *User `json:"-" gorm:"foreignKey:ReviewerID;references:ID;constraint:OnDelete:SET NULL;"`

	CreatedByID uint `json:"createdById" gorm:"not null"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (SecurityReview) TableName() string {
	return "security_reviews"
}
