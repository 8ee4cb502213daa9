package view

import "github.com/isaacaji/portfolio/internal/model"

type blurb struct{ title, text string }

var strengths = []blurb{
	{"Strategic Analysis", "MSc Management with distinction and DWP experience in transforming complex business requirements into actionable insights."},
	{"AI Product Engineering", "Building intelligent solutions that bridge technical capability with real-world applications and user needs."},
	{"Sustainability Focus", "Passionate about creating technology solutions that contribute to environmental sustainability and positive impact."},
}

var highlights = []blurb{
	{"MSc Management - Distinction", "Advanced strategic thinking and business analysis skills with academic excellence"},
	{"Government & Private Sector Experience", "Real-world application of analytical skills in government and private sector transformation projects"},
	{"Sustainability Focus", "Passionate advocate for environmentally conscious technology solutions"},
	{"Technical Delivery", "Built SonusShare, a full-stack web app handling API integrations and complex data workflows."},
	{"Financial Awareness", "Integrating financial modeling (FMVA) into BA practice for more robust decision support."},
}

var skills = []string{
	"Business Analysis",
	"Data Analytics (SQL, Power BI, Excel)",
	"Financial & Strategic Analysis",
	"Strategic Planning",
	"Stakeholder Management",
	"Process Optimization",
	"Sustainability Consulting",
	"Technical Writing",
	"Product Management",
}

var mission = []string{
	"I'm a Business Analyst with a strong technical edge. I bridge strategy, data, and technology to deliver products that work.",
	"With a Distinction in MSc Management and hands-on experience in software engineering, I combine analytical skills with technical know-how in SQL, Power BI, and full-stack development.",
	"I focus on data insights and stakeholder collaboration to drive better decisions. I've built SonusShare, a cross-platform playlist conversion app, and I'm committed to continuous growth, from BCS certifications to future financial modeling (FMVA).",
	"Whether I'm analyzing complex business requirements, developing AI product strategies, or writing about productivity and technical concepts, I bring a holistic approach that considers both immediate objectives and long-term implications.",
}

const vision = "To bridge the gap between complex business challenges and data-driven solutions, empowering organizations to make smarter decisions. I believe in harnessing technology responsibly, from analytics to product innovation, to create sustainable, long-term impact for both businesses and society."

type contactItem struct {
	label, value, href string
	external           bool
}

var contactInfo = []contactItem{
	{label: "Email", value: contactEmail, href: "mailto:" + contactEmail},
	{label: "LinkedIn", value: "Isaac Ajifowobaje Jr", href: "https://www.linkedin.com/in/isaac-ajifowobaje-jr/", external: true},
	{label: "GitHub", value: "Ajifowobajeisaac", href: "https://github.com/Ajifowobajeisaac", external: true},
	{label: "Location", value: "United Kingdom"},
}

var fieldLabels = map[model.ContactField]string{
	model.FieldName:    "Name",
	model.FieldEmail:   "Email",
	model.FieldSubject: "Subject",
	model.FieldMessage: "Message",
}
