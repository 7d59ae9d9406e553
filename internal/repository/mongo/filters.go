package mongo

import "go.mongodb.org/mongo-driver/bson"

// templateSearchFilter matches q as a case-insensitive substring of title
// or description. An empty q yields the match-all filter.
func templateSearchFilter(q string) bson.M {
	if q == "" {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"title": bson.M{"$regex": q, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
	}}
}

// sessionFilter matches sessions by exact user_id.
func sessionFilter(userID string) bson.M {
	return bson.M{"user_id": userID}
}

// foodLogFilter matches logs by exact user_id, conjoined with an exact
// log_date match when one is supplied. Dates compare as ISO-8601 text.
func foodLogFilter(userID, logDate string) bson.M {
	filter := bson.M{"user_id": userID}
	if logDate != "" {
		filter["log_date"] = logDate
	}
	return filter
}

// insertionOrder sorts ascending by _id. ObjectIDs are time-prefixed, so
// this gives a deterministic insertion-order listing instead of whatever
// order the store happens to return.
func insertionOrder() bson.D {
	return bson.D{{Key: "_id", Value: 1}}
}
