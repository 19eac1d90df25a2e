package models

// ArchitectureComponent is a node in a container's architecture diagram.
// Position coordinates are fractional so the frontend can place nodes freely.
type ArchitectureComponent struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	ComponentType  string  `json:"componentType" gorm:"type:text;not null"`
	SecurityDomain *string `json:"securityDomain" gorm:"type:text"`
	TrustBoundary  *string `json:"trustBoundary" gorm:"type:text"`
	NetworkZone    *string `json:"networkZone" gorm:"type:text"`

	PositionX *float64 `json:"positionX" gorm:"type:decimal(10,4)"`
	PositionY *float64 `json:"positionY" gorm:"type:decimal(10,4)"`

	IsActive bool `json:"isActive" gorm:"not null;default:true"`

	ContainerID uint      `json:"containerId" gorm:"not null;index:idx_architecture_component_container"`
	Container   Container `json:"-" gorm:"foreignKey:ContainerID;references:ID;constraint:OnDelete:CASCADE;"`

	CreatedByID uint `json:"createdById" gorm:"not null"`
	CreatedBy   User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (ArchitectureComponent) TableName() string {
	return "architecture_components"
}
