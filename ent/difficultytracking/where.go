// Code generated by ent, DO NOT EDIT.

package difficultytracking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldUserID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldLevel, v))
}

// ConsecutiveSuccesses applies equality check predicate on the "consecutive_successes" field. It's identical to ConsecutiveSuccessesEQ.
func ConsecutiveSuccesses(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldConsecutiveSuccesses, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// LastOutcome applies equality check predicate on the "last_outcome" field. It's identical to LastOutcomeEQ.
func LastOutcome(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldLastOutcome, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldContainsFold(FieldUserID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldLevel, v))
}

// ConsecutiveSuccessesEQ applies the EQ predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesNEQ applies the NEQ predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesNEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesIn applies the In predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldConsecutiveSuccesses, vs...))
}

// ConsecutiveSuccessesNotIn applies the NotIn predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesNotIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldConsecutiveSuccesses, vs...))
}

// ConsecutiveSuccessesGT applies the GT predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesGT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesGTE applies the GTE predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesGTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesLT applies the LT predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesLT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesLTE applies the LTE predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesLTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldConsecutiveSuccesses, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// LastOutcomeEQ applies the EQ predicate on the "last_outcome" field.
func LastOutcomeEQ(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldLastOutcome, v))
}

// LastOutcomeNEQ applies the NEQ predicate on the "last_outcome" field.
func LastOutcomeNEQ(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldLastOutcome, v))
}

// LastOutcomeIn applies the In predicate on the "last_outcome" field.
func LastOutcomeIn(vs ...string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldLastOutcome, vs...))
}

// LastOutcomeNotIn applies the NotIn predicate on the "last_outcome" field.
func LastOutcomeNotIn(vs ...string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldLastOutcome, vs...))
}

// LastOutcomeGT applies the GT predicate on the "last_outcome" field.
func LastOutcomeGT(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldLastOutcome, v))
}

// LastOutcomeGTE applies the GTE predicate on the "last_outcome" field.
func LastOutcomeGTE(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldLastOutcome, v))
}

// LastOutcomeLT applies the LT predicate on the "last_outcome" field.
func LastOutcomeLT(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldLastOutcome, v))
}

// LastOutcomeLTE applies the LTE predicate on the "last_outcome" field.
func LastOutcomeLTE(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldLastOutcome, v))
}

// LastOutcomeContains applies the Contains predicate on the "last_outcome" field.
func LastOutcomeContains(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldContains(FieldLastOutcome, v))
}

// LastOutcomeHasPrefix applies the HasPrefix predicate on the "last_outcome" field.
func LastOutcomeHasPrefix(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldHasPrefix(FieldLastOutcome, v))
}

// LastOutcomeHasSuffix applies the HasSuffix predicate on the "last_outcome" field.
func LastOutcomeHasSuffix(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldHasSuffix(FieldLastOutcome, v))
}

// LastOutcomeEqualFold applies the EqualFold predicate on the "last_outcome" field.
func LastOutcomeEqualFold(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEqualFold(FieldLastOutcome, v))
}

// LastOutcomeContainsFold applies the ContainsFold predicate on the "last_outcome" field.
func LastOutcomeContainsFold(v string) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldContainsFold(FieldLastOutcome, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DifficultyTracking) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DifficultyTracking) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DifficultyTracking) predicate.DifficultyTracking {
	return predicate.DifficultyTracking(sql.NotPredicates(p))
}
