package invitationRepo

import (
	"context"
	"fmt"
	"time"

	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AcceptWithCollaborator runs the two-collection acceptance write inside a
// session transaction: the invitation flips from pending to accepted, and the
// collaborator entry is pushed onto the trip. The collaborator push is guarded
// against duplicates; both writes commit or roll back together, so a crash can
// never leave an accepted invitation without its collaborator entry.
func (r *MongoInvitationRepo) AcceptWithCollaborator(invitationID, tripID string, collab models.Collaborator) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		invFilter := bson.M{
			"id":        invitationID,
			"status":    models.InvitationStatusPending,
			"expiresAt": bson.M{"$gt": time.Now()},
		}
		invUpdate := bson.M{"$set": bson.M{
			"status":    models.InvitationStatusAccepted,
			"updatedAt": time.Now(),
		}}
		res, err := r.coll.UpdateOne(sc, invFilter, invUpdate)
		if err != nil {
			return fmt.Errorf("invitation status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("invitation is not actionable")
		}

		tripFilter := bson.M{
			"id":                   tripID,
			"collaborators.userId": bson.M{"$ne": collab.UserID},
		}
		tripUpdate := bson.M{
			"$push": bson.M{"collaborators": collab},
			"$set":  bson.M{"updatedAt": time.Now()},
		}
		res, err = r.tripColl.UpdateOne(sc, tripFilter, tripUpdate)
		if err != nil {
			return fmt.Errorf("collaborator push failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("trip not found or user already a collaborator")
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("invitation accept transaction failed: %w", err)
	}

	return nil
}
