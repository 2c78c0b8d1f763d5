package rules

import "errors"

// Sentinel errors for matcher construction and the rule-set registry.
var (
	ErrNoRules         = errors.New("rule list is empty")
	ErrNoDefault       = errors.New("rule list must end with an unconditional default rule")
	ErrUnreachableRule = errors.New("unconditional rule before end of list shadows later rules")
	ErrEmptyReply      = errors.New("rule reply is empty")
	ErrEmptyTrigger    = errors.New("rule trigger is empty")
	ErrSetNotFound     = errors.New("rule set not found")
	ErrSetExists       = errors.New("rule set already registered")
	ErrEmptySetName    = errors.New("rule set name is empty")
)
