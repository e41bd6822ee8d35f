// Package iso8601 validates ISO-8601 combined date and time strings of the
// form
//
//	[-]YYYY-MM-DDThh:mm:ss[.fraction][Z|±hh:mm]
//
// Validation is deliberately loose about the day field: any day from 01 to 31
// is accepted regardless of month. [Parse] is stricter because it goes through
// time.Parse.
package iso8601
