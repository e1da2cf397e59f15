package skill

import (
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Kind is the category of change an effect causes
type Kind string

const (
	KindMoneyGain     Kind = "money_gain"
	KindMoneyLoss     Kind = "money_loss"
	KindMoneySteal    Kind = "money_steal"
	KindMoneyTransfer Kind = "money_transfer"

	KindPositionMove     Kind = "position_move"
	KindPositionTeleport Kind = "position_teleport"
	KindPositionSwap     Kind = "position_swap"
	KindPositionLock     Kind = "position_lock"

	KindStatusBuff     Kind = "status_buff"
	KindStatusDebuff   Kind = "status_debuff"
	KindStatusImmunity Kind = "status_immunity"
	KindStatusCleanse  Kind = "status_cleanse"

	KindDiceReroll  Kind = "dice_reroll"
	KindDiceModify  Kind = "dice_modify"
	KindDiceControl Kind = "dice_control"
	KindDiceDouble  Kind = "dice_double"

	KindPropertyDiscount   Kind = "property_discount"
	KindPropertyBonus      Kind = "property_bonus"
	KindPropertyProtection Kind = "property_protection"
	KindPropertyConfiscate Kind = "property_confiscate"

	KindSkillCooldownReduce Kind = "skill_cooldown_reduce"
	KindSkillCooldownReset  Kind = "skill_cooldown_reset"
	KindSkillSeal           Kind = "skill_seal"
	KindSkillMasteryBoost   Kind = "skill_mastery_boost"

	KindTurnExtra Kind = "turn_extra"
	KindTurnSkip  Kind = "turn_skip"

	KindEventTrigger Kind = "event_trigger"
	KindRuleChange   Kind = "rule_change"
)

// Family groups kinds that share a handler
type Family string

const (
	FamilyUnknown   Family = ""
	FamilyMoney     Family = "money"
	FamilyPosition  Family = "position"
	FamilyStatus    Family = "status"
	FamilyDice      Family = "dice"
	FamilyProperty  Family = "property"
	FamilySkillMeta Family = "skill_meta"
	FamilyTurnMeta  Family = "turn_meta"
	FamilyRule      Family = "rule"
)

var families = map[Kind]Family{
	KindMoneyGain:           FamilyMoney,
	KindMoneyLoss:           FamilyMoney,
	KindMoneySteal:          FamilyMoney,
	KindMoneyTransfer:       FamilyMoney,
	KindPositionMove:        FamilyPosition,
	KindPositionTeleport:    FamilyPosition,
	KindPositionSwap:        FamilyPosition,
	KindPositionLock:        FamilyPosition,
	KindStatusBuff:          FamilyStatus,
	KindStatusDebuff:        FamilyStatus,
	KindStatusImmunity:      FamilyStatus,
	KindStatusCleanse:       FamilyStatus,
	KindDiceReroll:          FamilyDice,
	KindDiceModify:          FamilyDice,
	KindDiceControl:         FamilyDice,
	KindDiceDouble:          FamilyDice,
	KindPropertyDiscount:    FamilyProperty,
	KindPropertyBonus:       FamilyProperty,
	KindPropertyProtection:  FamilyProperty,
	KindPropertyConfiscate:  FamilyProperty,
	KindSkillCooldownReduce: FamilySkillMeta,
	KindSkillCooldownReset:  FamilySkillMeta,
	KindSkillSeal:           FamilySkillMeta,
	KindSkillMasteryBoost:   FamilySkillMeta,
	KindTurnExtra:           FamilyTurnMeta,
	KindTurnSkip:            FamilyTurnMeta,
	KindEventTrigger:        FamilyRule,
	KindRuleChange:          FamilyRule,
}

// Family returns the handler family of k, or FamilyUnknown
func (k Kind) Family() Family {
	return families[k]
}

// DamageKind classifies k for caps and resistances
func (k Kind) DamageKind() zodiac.DamageKind {
	switch k.Family() {
	case FamilyMoney:
		return zodiac.DamageFinancial
	case FamilyStatus:
		return zodiac.DamageSocial
	case FamilyPosition:
		return zodiac.DamageTemporal
	case FamilySkillMeta:
		return zodiac.DamageMagical
	default:
		return zodiac.DamagePhysical
	}
}

// Hostile reports whether k harms its targets; immune targets ignore
// hostile effects cast by someone else
func (k Kind) Hostile() bool {
	switch k {
	case KindMoneyLoss, KindMoneySteal, KindPositionLock, KindStatusDebuff,
		KindPropertyConfiscate, KindSkillSeal, KindTurnSkip:
		return true
	}
	return false
}

// TargetMode selects who an effect lands on
type TargetMode string

const (
	TargetSelf   TargetMode = "self"
	TargetSingle TargetMode = "single"
	TargetAll    TargetMode = "all"
	TargetOthers TargetMode = "others"
	TargetRandom TargetMode = "random"
)

// ValueSource says how the declared value becomes a base magnitude
type ValueSource string

const (
	ValueFixed              ValueSource = ""
	ValueCasterMoneyPercent ValueSource = "caster_money_percent"
	ValueTargetMoneyPercent ValueSource = "target_money_percent"
	ValuePropertyCount      ValueSource = "property_count"
)
