package quoting

// Website type names with dedicated copy.
const (
	TypeEcommerce = "E-commerce Website"
	TypeCorporate = "Corporate Website"
	TypePortfolio = "Portfolio"
	TypeBlog      = "Blog/Content Site"
	TypeWebApp    = "Custom Web App"
)

// CommonTasksGroup labels the breakdown bucket of tasks without feature links.
const CommonTasksGroup = "Common Tasks"

const defaultTypeValuePoint = "Enhance your online presence with a professional website"

// Industries is the picklist offered when creating a quote.
var Industries = []string{
	"Ecommerce",
	"Healthcare",
	"Education",
	"Real-Estate",
	"Finance",
	"Technology",
	"Manufacturing",
	"Hospitality",
	"Non-Profit",
	"Other",
}

// Feature names boosted per lowercased industry when suggesting features.
var industryFeatures = map[string][]string{
	"ecommerce":   {"Shopping Cart", "Product Catalog", "Payment Gateway"},
	"healthcare":  {"User Authentication", "Content Management System", "HIPAA Compliance"},
	"education":   {"User Authentication", "Content Management System", "Learning Management"},
	"real-estate": {"Property Listings", "Content Management System", "Maps Integration"},
	"finance":     {"User Authentication", "Secure Portal", "Payment Gateway", "Compliance"},
}

var overviewClauses = map[string]string{
	TypeEcommerce: " that provides a seamless shopping experience, secure payment processing, and easy product management",
	TypeCorporate: " that showcases your brand identity, services, and expertise to strengthen your online presence",
	TypePortfolio: " that displays your work in an engaging, professional manner to attract clients and demonstrate your capabilities",
	TypeBlog:      " that delivers your content through an attractive, easy-to-navigate interface to grow your audience and engagement",
	TypeWebApp:    " with custom functionality tailored to your specific business needs and processes",
}

var typeValuePoints = map[string]string{
	TypeEcommerce: "Increase revenue through a professional online store that operates 24/7",
	TypeCorporate: "Strengthen your brand image with a professional online presence",
	TypePortfolio: "Showcase your work to attract more clients and opportunities",
	TypeBlog:      "Build an engaged audience through regular content updates",
	TypeWebApp:    "Improve operational efficiency with custom software tailored to your needs",
}

var industryValuePoints = map[string]string{
	"ecommerce":   "Compete effectively in the digital marketplace with a full-featured online store",
	"healthcare":  "Build trust with patients through a professional, accessible online platform",
	"education":   "Enhance learning experiences with modern digital tools and resources",
	"real-estate": "Showcase properties effectively to attract qualified buyers and tenants",
	"finance":     "Provide secure, convenient financial services to your clients online",
}

// Used when a selected feature has no stored business value.
var featureValuePoints = map[string]string{
	"Responsive Design":         "Reach customers on all devices with a mobile-friendly design",
	"Content Management System": "Update your website content easily without technical knowledge",
	"User Authentication":       "Create personalized experiences for registered users",
	"Payment Gateway":           "Accept payments securely online",
}

var bonusDeliverables = map[string]Deliverable{
	TypeEcommerce: {Name: "Online Store", Description: "A fully functional e-commerce website with product listings and checkout"},
	TypeCorporate: {Name: "Business Website", Description: "A professional business website representing your brand and services"},
}
