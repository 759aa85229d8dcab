// Package timezone keeps two notions of time apart.
//
// Instants (created_at, event timestamps, rate limiter windows) live in the
// application timezone set by APP_TIMEZONE and go through Now, ToAppTime and
// Format.
//
// Stay dates (check_in, check_out, report periods) are calendar dates with no
// time of day. ParseDate and FormatDate always anchor them at midnight UTC so
// that night counts and overlap checks never shift with the server timezone.
package timezone
