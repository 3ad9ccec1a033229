// Package content holds the read-only marketing content: guest
// testimonials, running offers and festival specials.
package content

import "github.com/spiceterra/webapi/internal/domain"

var testimonials = []domain.Testimonial{
	{
		Name:     "Priya Sharma",
		Location: "Mumbai",
		Rating:   5,
		Comment:  "The most authentic Indian food I've had outside of my grandmother's kitchen. The ambiance is warm and welcoming, truly feels like home. Every dish is bursting with flavor!",
		Date:     "2 weeks ago",
	},
	{
		Name:     "Rajesh Patel",
		Location: "Delhi",
		Rating:   5,
		Comment:  "Exceptional flavors and presentation. The butter chicken is absolutely divine, and the service is impeccable. Highly recommended for anyone who loves authentic Indian cuisine!",
		Date:     "1 month ago",
	},
	{
		Name:     "Sara Mehta",
		Location: "Uttar Pradesh",
		Rating:   5,
		Comment:  "As someone who travels extensively, I can say Spice Terra offers one of the finest Indian dining experiences. The spices are perfectly balanced and the portions are generous.",
		Date:     "3 weeks ago",
	},
	{
		Name:     "Amit Kumar",
		Location: "Bangalore",
		Rating:   5,
		Comment:  "The biryani here is incredible! Perfectly cooked rice with tender meat and aromatic spices. The rustic ambiance adds to the whole experience. Will definitely visit again!",
		Date:     "1 week ago",
	},
	{
		Name:     "Emily",
		Location: "Bangalore",
		Rating:   5,
		Comment:  "Found this gem during my trip to India. The staff was incredibly friendly and helped me navigate the menu. Every dish we tried was outstanding. The naan bread was the best I've ever had!",
		Date:     "2 months ago",
	},
	{
		Name:     "Vikram Singh",
		Location: "Pune",
		Rating:   5,
		Comment:  "Celebrated my anniversary here and it was perfect! The team arranged a beautiful table setting and the food was exceptional. The dal makhani is a must-try. Truly memorable evening!",
		Date:     "3 weeks ago",
	},
	{
		Name:     "Ayush Gupta",
		Location: "Gujarat",
		Rating:   5,
		Comment:  "The vegetarian options here are amazing! As a vegetarian, I'm always concerned about variety, but Spice Terra exceeded all expectations. The paneer dishes are exquisite.",
		Date:     "1 month ago",
	},
	{
		Name:     "Mohammed Hassan",
		Location: "Maharashtra",
		Rating:   5,
		Comment:  "Authentic flavors that remind me of home. The tandoori items are perfectly charred and smoky. Great attention to detail in both food and service. Five stars all the way!",
		Date:     "2 weeks ago",
	},
	{
		Name:     "Ananya Reddy",
		Location: "Hyderabad",
		Rating:   5,
		Comment:  "As a Hyderabadi, I'm very particular about biryani. I must say, Spice Terra's biryani is authentic and delicious! The restaurant has a lovely rustic charm that makes you feel at home.",
		Date:     "1 week ago",
	},
}

var offers = []domain.Offer{
	{
		Title:       "Weekend Family Feast",
		Description: "Get 20% off on orders above ₹2000 every Saturday and Sunday",
		Discount:    "20% OFF",
		Validity:    "Valid till Dec 31, 2025",
		Code:        "FAMILY20",
	},
	{
		Title:       "Lunch Special",
		Description: "Exclusive lunch combo at just ₹299 from 12 PM to 3 PM",
		Discount:    "₹299 ONLY",
		Validity:    "Monday to Friday",
		Code:        "LUNCH299",
	},
	{
		Title:       "First Order Bonus",
		Description: "New customers get flat ₹200 off on first online order",
		Discount:    "₹200 OFF",
		Validity:    "One time use",
		Code:        "FIRST200",
	},
}

var festivalSpecials = []domain.FestivalSpecial{
	{
		Name:        "Diwali Special Thali",
		Description: "Traditional festive platter with 8 delicacies including sweets",
		Price:       "₹799",
		Available:   "Nov 1-15",
	},
	{
		Name:        "Holi Colors Feast",
		Description: "Vibrant curries and colorful desserts celebrating the festival",
		Price:       "₹699",
		Available:   "March 15-25",
	},
	{
		Name:        "Eid Biryani Special",
		Description: "Royal Hyderabadi Biryani with special raita and dessert",
		Price:       "₹899",
		Available:   "Eid celebrations",
	},
}

// Testimonials returns every guest testimonial
func Testimonials() []domain.Testimonial {
	out := make([]domain.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Offers returns the running promotional offers
func Offers() []domain.Offer {
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	return out
}

// FestivalSpecials returns the seasonal festival menu
func FestivalSpecials() []domain.FestivalSpecial {
	out := make([]domain.FestivalSpecial, len(festivalSpecials))
	copy(out, festivalSpecials)
	return out
}
