// Package presenter formats replies for the console.
package presenter

// Fixed replies of the assistant bot.
const (
	MsgWelcome = "Welcome to the assistant bot!"
	MsgPrompt  = "Enter a command: "
	MsgHello   = "How can I help you?"
	MsgGoodbye = "Goodbye!"

	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgContactDeleted = "Contact deleted."
	MsgBirthdayAdded  = "Birthday added."
	MsgBirthdayNotSet = "Birthday not set for this contact."
	MsgNoBirthdays    = "No upcoming birthdays this week."

	// Argument prompts.
	MsgNeedNameAndPhone    = "Give me name and phone please."
	MsgNeedNameAndBirthday = "Give me name and birthday please."
	MsgNeedName            = "Enter user name."

	// Error replies.
	MsgInvalidInput   = "Invalid input."
	MsgUnknownCommand = "Command not recognized."
	MsgInternalError  = "Something went wrong. Please try again."
)
