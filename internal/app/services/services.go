package services

// Services defined in this package:
// - WaitlistService: Handles student and recruiter waitlist submissions
// - NewsletterService: Handles newsletter subscriptions
// - NotificationService: Handles signup email dispatch
// - AuthService: Handles authentication and token lifecycle
// - AdminService: Handles dashboard listings, stats and CSV export
