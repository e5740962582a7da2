package rule

type CreateRuleRequest struct {
	Name         string      `json:"name" yaml:"name" binding:"required"`
	Description  string      `json:"description" yaml:"description"`
	SourceModule string      `json:"source_module" yaml:"source_module" binding:"required"`
	TargetModule string      `json:"target_module" yaml:"target_module" binding:"required"`
	TriggerEvent string      `json:"trigger_event" yaml:"trigger_event" binding:"required"`
	Enabled      *bool       `json:"enabled" yaml:"enabled"`
	Conditions   []Condition `json:"conditions" yaml:"conditions"`
	Actions      []Action    `json:"actions" yaml:"actions"`
	Priority     int         `json:"priority" yaml:"priority"`
}

// UpdateRuleRequest is a partial update: nil fields keep their value.
type UpdateRuleRequest struct {
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	SourceModule *string      `json:"source_module"`
	TargetModule *string      `json:"target_module"`
	TriggerEvent *string      `json:"trigger_event"`
	Enabled      *bool        `json:"enabled"`
	Conditions   *[]Condition `json:"conditions"`
	Actions      *[]Action    `json:"actions"`
	Priority     *int         `json:"priority"`
}
