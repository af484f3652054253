package mailer

import "fmt"

// Email templates for the recruiting workflows. Each helper returns a
// subject line and an HTML body.

func ApplicationReceived(firstName, positionTitle, department string) (string, string) {
	subject := fmt.Sprintf("Application Received - %s", positionTitle)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>Thank you for applying for the <strong>%s</strong> position at %s.</p>
<p>We have received your application and will review it shortly.</p>
<p>Best regards,<br>The Recruitment Team</p>
</div>`, firstName, positionTitle, department)
	return subject, html
}

func ApplicationAccepted(firstName, positionTitle string) (string, string) {
	subject := "Congratulations! Your Application Has Been Accepted"
	html := fmt.Sprintf(`<div style="font-family:sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>We are pleased to inform you that your application for <strong>%s</strong> has been accepted. We will contact you with the next steps soon.</p>
<p>Best regards,<br>HR Team</p>
</div>`, firstName, positionTitle)
	return subject, html
}

func ApplicationRejected(firstName, positionTitle string) (string, string) {
	subject := "Update on Your Application Status"
	html := fmt.Sprintf(`<div style="font-family:sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>We appreciate your interest in <strong>%s</strong>. Unfortunately, we will not be moving forward with your application.</p>
<p>Best regards,<br>HR Team</p>
</div>`, firstName, positionTitle)
	return subject, html
}

func ApplicationStatusChanged(firstName, status, notes string) (string, string) {
	if notes == "" {
		notes = "No additional notes provided."
	}
	subject := "Application Status Updated"
	html := fmt.Sprintf(`<div style="font-family:sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>Your application status has been updated to: <strong>%s</strong>.</p>
<p>Notes: %s</p>
</div>`, firstName, status, notes)
	return subject, html
}

func InterviewScheduledApplicant(firstName, date, timeOfDay, interviewType, interviewer, place, notes string) (string, string) {
	if notes == "" {
		notes = "No additional notes."
	}
	subject := "Interview Scheduled"
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>Your interview has been scheduled.</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Type:</strong> %s</p>
<p><strong>Interviewer:</strong> %s</p>
<p><strong>Location / Link:</strong> %s</p>
<p><strong>Notes:</strong> %s</p>
</div>`, firstName, date, timeOfDay, interviewType, interviewer, place, notes)
	return subject, html
}

func InterviewAssignedInterviewer(name, applicantName, date, timeOfDay, interviewType, place, notes string) (string, string) {
	if notes == "" {
		notes = "No additional notes."
	}
	subject := "You have been assigned an interview"
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding:20px;">
<p>Dear %s,</p>
<p>You have been assigned to interview an applicant.</p>
<p><strong>Applicant:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Type:</strong> %s</p>
<p><strong>Location / Link:</strong> %s</p>
<p><strong>Notes:</strong> %s</p>
</div>`, name, applicantName, date, timeOfDay, interviewType, place, notes)
	return subject, html
}

func InterviewCancelledApplicant(firstName, date, timeOfDay, reason string) (string, string) {
	subject := "Interview Cancelled"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>We regret to inform you that your interview scheduled for %s at %s has been cancelled.</p>
<p>Reason: %s</p>
<p>We apologize for any inconvenience this may cause. Please feel free to contact us if you have any questions or would like to reschedule.</p>
<p>Best regards,<br/>Recruitment Team</p>`, firstName, date, timeOfDay, reason)
	return subject, html
}

func InterviewCancelledInterviewer(name, candidateName, date, timeOfDay, reason string) (string, string) {
	subject := "Interview Cancelled"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>This is to notify you that the interview with %s, scheduled for %s at %s, has been cancelled.</p>
<p>Reason: %s</p>
<p>Thank you for your understanding and cooperation.</p>
<p>Best regards,<br/>Recruitment Team</p>`, name, candidateName, date, timeOfDay, reason)
	return subject, html
}

func InterviewRescheduledApplicant(firstName, oldDate, oldTime, newDate, newTime, reason string) (string, string) {
	subject := "Interview Rescheduled"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>We would like to inform you that your interview originally scheduled for %s at %s has been rescheduled to %s at %s.</p>
<p>Reason: %s</p>
<p>Please check your updated schedule and confirm your availability at your earliest convenience.</p>
<p>We apologize for any inconvenience caused and appreciate your understanding.</p>
<p>Best regards,<br/>Recruitment Team</p>`, firstName, oldDate, oldTime, newDate, newTime, reason)
	return subject, html
}

func InterviewRescheduledInterviewer(name, candidateName, oldDate, oldTime, newDate, newTime, reason string) (string, string) {
	subject := "Interview Rescheduled"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Please be informed that the interview with %s originally scheduled for %s at %s has been rescheduled to %s at %s.</p>
<p>Reason: %s</p>
<p>Kindly review your schedule and adjust accordingly.</p>
<p>Thank you for your cooperation.</p>
<p>Best regards,<br/>Recruitment Team</p>`, name, candidateName, oldDate, oldTime, newDate, newTime, reason)
	return subject, html
}

func InterviewCompleted(firstName, date, timeOfDay string) (string, string) {
	subject := "Interview Completed"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for attending your interview on %s at %s. We appreciate the time and effort you invested in the process.</p>
<p>Our team will review your interview and be in touch with you regarding the next steps.</p>
<p>We wish you all the best and thank you for your interest in joining our organization.</p>
<p>Best regards,<br/>Recruitment Team</p>`, firstName, date, timeOfDay)
	return subject, html
}

func PasswordResetRequest(resetLink string) (string, string) {
	subject := "Password Reset Request"
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4F46E5;">Password Reset Request</h2>
<p>Hi,</p>
<p>You requested a password reset. Click the button below to reset your password:</p>
<div style="text-align: center; margin: 30px 0;">
<a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Reset Password</a>
</div>
<p><strong>This link will expire in 15 minutes.</strong></p>
<p>If you did not request this password reset, please ignore this email.</p>
<p style="color: #666; font-size: 12px;">If the button doesn't work, copy and paste this link into your browser:<br><a href="%s">%s</a></p>
</div>`, resetLink, resetLink, resetLink)
	return subject, html
}

func PasswordResetConfirmation() (string, string) {
	subject := "Password Reset Successful"
	html := `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #059669;">Password Reset Successful</h2>
<p>Hi,</p>
<p>Your password has been successfully reset.</p>
<p>If you did not make this change, please contact our support team immediately.</p>
<p>For security reasons, you may need to log in again on all your devices.</p>
</div>`
	return subject, html
}

func PasswordChangedNotice(when string) (string, string) {
	subject := "Password Changed Successfully"
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #059669;">Password Changed Successfully</h2>
<p>Hi,</p>
<p>Your password has been successfully changed from your account settings.</p>
<p><strong>Time:</strong> %s</p>
<p>If you did not make this change, please contact our support team immediately.</p>
</div>`, when)
	return subject, html
}

func CandidateMessage(body string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color:#333; padding:20px;">
%s
<p style="margin-top:20px;">Best regards,<br>The Hiring Team</p>
</div>`, body)
}

func MessageReply(firstName, lastName, acknowledgment, replyText string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color:#333; padding:20px;">
<p>Dear %s %s,</p>
<p>%s</p>
<p>%s</p>
<p style="margin-top:20px;">Best regards,<br>The Team</p>
</div>`, firstName, lastName, acknowledgment, replyText)
}
