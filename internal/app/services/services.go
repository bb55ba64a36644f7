package services

// Services defined in this package:
// - AuthService: credential lookup and new-student registration
// - RegistrationService: course add/drop, catalog views, profile updates
// - AnalyticsService: on-demand aggregation over the entity stores
