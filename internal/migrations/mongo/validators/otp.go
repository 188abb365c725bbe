package validators

import "go.mongodb.org/mongo-driver/bson"

var OtpValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"phone", "code", "created_at"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"code": bson.M{
				"bsonType": "string",
				"pattern":  "^[0-9]{6}$",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
