package model

// PolicyName tags a bidding policy.
type PolicyName string

const (
	PolicyZero       PolicyName = "ZERO"
	PolicyMinimum    PolicyName = "MINIMUM"
	PolicyMaximum    PolicyName = "MAXIMUM"
	PolicyDefault    PolicyName = "DEFAULT"
	PolicyAggressive PolicyName = "AGGRESSIVE"
)
