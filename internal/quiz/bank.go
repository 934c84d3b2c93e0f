package quiz

// questionBank returns the full question bank the manager samples from.
func questionBank() []Question {
	return []Question{
		// Password security
		trueFalse("A strong password should contain at least 12 characters with a mix of letters, numbers, and symbols.",
			true, "Strong passwords should be at least 12 characters long and include uppercase, lowercase, numbers, and special characters."),
		multipleChoice("Which of the following is the most secure password?",
			[]string{"password123", "P@ssw0rd2024!", "12345678", "qwerty"},
			1, "P@ssw0rd2024! contains uppercase, lowercase, numbers, and special characters, making it the strongest option."),
		trueFalse("You should use the same password for multiple accounts to make it easier to remember.",
			false, "Using unique passwords for each account prevents hackers from accessing multiple accounts if one is compromised."),
		multipleChoice("What is the primary benefit of using a password manager?",
			[]string{"It makes passwords shorter", "It generates and stores unique passwords", "It shares passwords with friends", "It eliminates the need for passwords"},
			1, "Password managers generate strong, unique passwords for each account and store them securely."),

		// Phishing
		trueFalse("Phishing emails always come from obviously fake email addresses.",
			false, "Sophisticated phishing emails can appear to come from legitimate sources and may be very convincing."),
		multipleChoice("What should you do if you receive a suspicious email asking for personal information?",
			[]string{"Reply with the information requested", "Click the links to verify", "Delete the email and contact the company directly", "Forward it to friends"},
			2, "Never provide personal information through email. Contact the company directly using their official website or phone number."),
		trueFalse("Legitimate companies will ask for your password via email.",
			false, "Legitimate companies will never ask for passwords, PINs, or sensitive information via email."),
		multipleChoice("Which of these is a common sign of a phishing email?",
			[]string{"Professional formatting", "Correct spelling", "Urgent requests for action", "Company logo"},
			2, "Phishing emails often create false urgency to pressure victims into acting without thinking carefully."),

		// Malware
		trueFalse("Antivirus software should be updated regularly to protect against new threats.",
			true, "Regular updates ensure antivirus software can detect and block the latest malware threats."),
		multipleChoice("What is ransomware?",
			[]string{"Free software", "Malware that encrypts files for ransom", "A type of firewall", "An email client"},
			1, "Ransomware is malicious software that encrypts your files and demands payment for the decryption key."),
		trueFalse("It's safe to download software from any website.",
			false, "Only download software from trusted, official sources to avoid malware infections."),
		multipleChoice("Which of these can help prevent malware infections?",
			[]string{"Clicking on pop-up ads", "Installing software from unknown sources", "Keeping software updated", "Disabling antivirus"},
			2, "Keeping software updated patches security vulnerabilities that malware could exploit."),

		// Social engineering
		trueFalse("Social engineering attacks target technology vulnerabilities rather than human psychology.",
			false, "Social engineering attacks exploit human psychology and trust rather than technical vulnerabilities."),
		multipleChoice("What should you do if someone calls claiming to be from IT and asks for your password?",
			[]string{"Give them the password immediately", "Hang up and call IT directly", "Ask for their employee ID", "Change your password first"},
			1, "Legitimate IT staff will never ask for your password. Verify identity through official channels."),
		trueFalse("Attackers may use personal information from social media for social engineering.",
			true, "Information shared on social media can be used to make social engineering attacks more convincing and targeted."),

		// Two-factor authentication
		trueFalse("Two-factor authentication (2FA) significantly improves account security.",
			true, "2FA adds an extra layer of security by requiring something you know (password) and something you have (phone)."),
		multipleChoice("Which is the most secure form of two-factor authentication?",
			[]string{"SMS text messages", "Email codes", "Authenticator apps", "Security questions"},
			2, "Authenticator apps are more secure than SMS because they're not vulnerable to SIM swapping attacks."),
		trueFalse("You only need 2FA on your most important accounts.",
			false, "2FA should be enabled on all accounts that support it, especially email, banking, and social media."),

		// Public WiFi
		trueFalse("Public WiFi networks are always secure.",
			false, "Public WiFi networks are often unsecured and can be dangerous for sensitive activities."),
		multipleChoice("What should you avoid doing on public WiFi?",
			[]string{"Reading news", "Checking weather", "Online banking", "Browsing social media"},
			2, "Avoid accessing sensitive accounts like banking on public WiFi as data can be intercepted."),
		trueFalse("A VPN (Virtual Private Network) can help protect your data on public WiFi.",
			true, "VPNs encrypt your internet connection, protecting your data from being intercepted on public networks."),

		// Software updates
		trueFalse("Software updates often contain important security fixes.",
			true, "Updates frequently include patches for security vulnerabilities that could be exploited by attackers."),
		multipleChoice("What's the best practice for software updates?",
			[]string{"Never update software", "Only update once a year", "Enable automatic updates when possible", "Wait for others to test updates first"},
			2, "Automatic updates ensure you receive critical security patches as soon as they're available."),
		trueFalse("It's safe to ignore security updates if your computer seems to be working fine.",
			false, "Security vulnerabilities may not be immediately obvious, but they can be exploited by attackers."),

		// Backups
		trueFalse("The 3-2-1 backup rule means having 3 copies of data on 2 different media with 1 offsite.",
			true, "The 3-2-1 rule is a best practice: 3 copies, 2 different storage types, 1 stored offsite."),
		multipleChoice("How often should you test your backups?",
			[]string{"Never", "Once a year", "Regularly", "Only when needed"},
			2, "Regular testing ensures your backups are working properly and can be restored when needed."),
		trueFalse("Cloud storage alone is sufficient for backup protection.",
			false, "While cloud storage is helpful, it's best to have multiple backup methods following the 3-2-1 rule."),

		// Privacy and data protection
		trueFalse("You should regularly review privacy settings on your social media accounts.",
			true, "Regular reviews help ensure you're only sharing information with intended audiences and maintaining your privacy."),
		multipleChoice("What information should you avoid sharing on social media?",
			[]string{"Your favorite movies", "Your vacation photos", "Your full birthdate and address", "Your hobbies"},
			2, "Personal details like full birthdate, address, and location information can be used for identity theft."),
		trueFalse("It's safe to click 'Accept All Cookies' on every website.",
			false, "Accepting all cookies can allow extensive tracking of your online activities across websites."),
	}
}
